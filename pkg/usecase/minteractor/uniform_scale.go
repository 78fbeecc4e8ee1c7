// 指示: miu200521358
package minteractor

import (
	"sync"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/port/moutput"
)

// UniformScale は選択ノードのスケール成分の変更を全成分へ揃える。
type UniformScale struct {
	mu        sync.Mutex
	enabled   bool
	adjusters moutput.IScaleAdjusterProvider
	selection *skeleton.Node
	lastScale mmath.Vec3
}

// NewUniformScale は均一スケールを生成する。adjusters が nil の場合スケール調整へは反映しない。
func NewUniformScale(enabled bool, adjusters moutput.IScaleAdjusterProvider) *UniformScale {
	return &UniformScale{enabled: enabled, adjusters: adjusters}
}

// Enabled は均一スケールが有効かを返す。
func (u *UniformScale) Enabled() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.enabled
}

// SetEnabled は均一スケールの有効状態を設定する。
func (u *UniformScale) SetEnabled(enabled bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.enabled = enabled
}

// Select は選択ノードを切り替え、現在のスケールを記録する。
func (u *UniformScale) Select(node *skeleton.Node) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.selection = node
	if node != nil {
		u.lastScale = node.Scale
	}
}

// Update はスケール変化を検出し、最初に変化した成分 (X, Y, Z の順) の値で全成分を揃える。
func (u *UniformScale) Update() (mmath.Vec3, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.enabled || u.selection == nil {
		return mmath.Vec3{}, false
	}
	current := u.selection.Scale
	if current.Equals(u.lastScale) {
		return mmath.Vec3{}, false
	}

	var value float64
	switch {
	case !mmath.Approximately(current.X, u.lastScale.X):
		value = current.X
	case !mmath.Approximately(current.Y, u.lastScale.Y):
		value = current.Y
	case !mmath.Approximately(current.Z, u.lastScale.Z):
		value = current.Z
	default:
		u.lastScale = current
		return mmath.Vec3{}, false
	}

	uniform := mmath.Vec3Uniform(value)
	if current.Equals(uniform) {
		u.lastScale = current
		return mmath.Vec3{}, false
	}

	u.selection.Scale = uniform
	if u.adjusters != nil {
		if adjuster := u.adjusters.ScaleAdjuster(u.selection); adjuster != nil {
			adjuster.Scale = uniform
		}
	}
	u.lastScale = uniform
	return uniform, true
}

// NewUniformScale は設定値の有効状態で均一スケールを生成する。
func (uc *BoneSetupUsecase) NewUniformScale(adjusters moutput.IScaleAdjusterProvider) *UniformScale {
	return NewUniformScale(uc.settings.UniformScale, adjusters)
}
