// 指示: miu200521358
package minteractor

import (
	"sync"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
)

const (
	// transformPositionEpsilon は位置・スケール変化の判定許容差。
	transformPositionEpsilon = 1e-5
	// transformRotationEpsilon は回転変化の判定許容差。
	transformRotationEpsilon = 1e-6
)

// localTransform はノードのローカル変換の記録を表す。
type localTransform struct {
	position mmath.Vec3
	rotation mmath.Quaternion
	scale    mmath.Vec3
}

// captureLocalTransform はノードのローカル変換を記録する。
func captureLocalTransform(node *skeleton.Node) localTransform {
	return localTransform{position: node.Position, rotation: node.Rotation, scale: node.Scale}
}

// MirrorSyncChange は左右同期で反映したチャンネルを表す。
type MirrorSyncChange struct {
	Mirror   *skeleton.Node
	Position bool
	Rotation bool
	Scale    bool
}

// MirrorSync は選択ノードの変換変更を左右対ボーンへ鏡映する。
type MirrorSync struct {
	mu        sync.Mutex
	enabled   bool
	cache     *MirrorCache
	selection *skeleton.Node
	last      localTransform
}

// NewMirrorSync は左右同期を生成する。
func NewMirrorSync(enabled bool) *MirrorSync {
	return &MirrorSync{enabled: enabled, cache: NewMirrorCache()}
}

// Enabled は左右同期が有効かを返す。
func (s *MirrorSync) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// SetEnabled は左右同期の有効状態を設定する。
func (s *MirrorSync) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}

// Cache は左右対キャッシュを返す。
func (s *MirrorSync) Cache() *MirrorCache {
	return s.cache
}

// Select は選択ノードを切り替え、現在の変換を記録する。
func (s *MirrorSync) Select(node *skeleton.Node) {
	s.cache.Update(node)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = node
	if node != nil {
		s.last = captureLocalTransform(node)
	}
}

// Update は選択ノードの変換変化を検出し、変化したチャンネルのみ左右対ボーンへ反映する。
func (s *MirrorSync) Update() (MirrorSyncChange, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled || s.selection == nil {
		return MirrorSyncChange{}, false
	}
	mirror, ok := s.cache.Mirror(s.selection)
	if !ok {
		return MirrorSyncChange{}, false
	}

	current := captureLocalTransform(s.selection)
	change := MirrorSyncChange{
		Mirror:   mirror,
		Position: !current.position.NearEquals(s.last.position, transformPositionEpsilon),
		Rotation: !current.rotation.NearEquals(s.last.rotation, transformRotationEpsilon),
		Scale:    !current.scale.NearEquals(s.last.scale, transformPositionEpsilon),
	}
	if !change.Position && !change.Rotation && !change.Scale {
		return MirrorSyncChange{}, false
	}

	if change.Position {
		mirror.Position = current.position.MirroredX()
	}
	if change.Rotation {
		mirror.Rotation = current.rotation.MirroredX()
	}
	if change.Scale {
		mirror.Scale = current.scale
	}
	s.last = current
	return change, true
}

// NewMirrorSync は設定値の有効状態で左右同期を生成する。
func (uc *BoneSetupUsecase) NewMirrorSync() *MirrorSync {
	return NewMirrorSync(uc.settings.MirrorSync)
}
