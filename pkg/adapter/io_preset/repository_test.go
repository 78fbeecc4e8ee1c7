// 指示: miu200521358
package io_preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/port/moutput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ moutput.IPresetRepository = (*PresetRepository)(nil)

func newSamplePreset(title string) *skeleton.BoneScalePreset {
	return &skeleton.BoneScalePreset{
		Title: title,
		Scales: []skeleton.BoneScaleData{
			{BoneName: "Hips", Scale: mmath.NewVec3(1, 1.2, 1)},
			{BoneName: "Chest", Scale: mmath.Vec3Uniform(0.9)},
		},
	}
}

func TestPresetRepositorySaveAndLoad(t *testing.T) {
	repository := NewPresetRepository(filepath.Join(t.TempDir(), "Presets"), nil)

	path, err := repository.Save(newSamplePreset("Slim"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(repository.Dir(), "Slim.yaml"), path)

	loaded, err := repository.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Slim", loaded.Title)
	require.Len(t, loaded.Scales, 2)
	assert.Equal(t, "Hips", loaded.Scales[0].BoneName)
	assert.True(t, loaded.Scales[0].Scale.Equals(mmath.NewVec3(1, 1.2, 1)))
}

func TestPresetRepositoryLoadReturnsCopy(t *testing.T) {
	repository := NewPresetRepository(t.TempDir(), nil)
	path, err := repository.Save(newSamplePreset("Copy"))
	require.NoError(t, err)

	first, err := repository.Load(path)
	require.NoError(t, err)
	first.Title = "changed"
	first.Scales[0].BoneName = "changed"

	second, err := repository.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Copy", second.Title)
	assert.Equal(t, "Hips", second.Scales[0].BoneName)
}

func TestPresetRepositorySaveUsesUniqueNames(t *testing.T) {
	repository := NewPresetRepository(t.TempDir(), nil)

	first, err := repository.Save(newSamplePreset("Pose"))
	require.NoError(t, err)
	second, err := repository.Save(newSamplePreset("Pose"))
	require.NoError(t, err)
	third, err := repository.Save(newSamplePreset("Pose"))
	require.NoError(t, err)

	assert.Equal(t, "Pose.yaml", filepath.Base(first))
	assert.Equal(t, "Pose 1.yaml", filepath.Base(second))
	assert.Equal(t, "Pose 2.yaml", filepath.Base(third))
}

func TestPresetRepositoryListAndDelete(t *testing.T) {
	dir := t.TempDir()
	repository := NewPresetRepository(dir, nil)
	_, err := repository.Save(newSamplePreset("b"))
	require.NoError(t, err)
	aPath, err := repository.Save(newSamplePreset("a"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.txt"), []byte("x"), 0o644))

	files, err := repository.List()
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a", files[0].Title)
	assert.Equal(t, "b", files[1].Title)

	require.NoError(t, repository.Delete(aPath))
	files, err = repository.List()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "b", files[0].Title)
	assert.Error(t, repository.Delete(aPath))
}

func TestPresetRepositoryListMissingDir(t *testing.T) {
	files, err := NewPresetRepository(filepath.Join(t.TempDir(), "missing"), nil).List()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestPresetRepositoryLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: x\nscales:\n  - bone_name: Hips\n    scale: [1, 2]\n"), 0o644))

	_, err := NewPresetRepository(dir, nil).Load(path)
	assert.Error(t, err)
}

func TestPresetRepositoryListSkipsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("title: [\n"), 0o644))

	core, logs := observer.New(zapcore.WarnLevel)
	repository := NewPresetRepository(dir, zap.New(core))
	saved, err := repository.Save(newSamplePreset("body"))
	require.NoError(t, err)

	files, err := repository.List()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, saved, files[0].Path)
	assert.Equal(t, "body", files[0].Title)

	entries := logs.FilterField(zap.String("path", broken)).All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "a_b_c", SanitizeFileName("a/b:c"))
	assert.Equal(t, "プリセット", SanitizeFileName("  プリセット "))
	assert.Equal(t, "_", SanitizeFileName("   "))
	assert.Equal(t, "x__y", SanitizeFileName("x?*y"))
}
