// 指示: miu200521358
package skeleton

import (
	"fmt"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/humanoid"
)

// Avatar はヒューマノイド割り当て済みのアバターを表す。
type Avatar struct {
	root  *Node
	bones [humanoid.SlotCount]*Node
}

// NewAvatar はアバタールートからアバターを生成する。
func NewAvatar(root *Node) *Avatar {
	if root != nil {
		root.SkeletonDriver = true
	}
	return &Avatar{root: root}
}

// Root はアバタールートを返す。
func (a *Avatar) Root() *Node {
	if a == nil {
		return nil
	}
	return a.root
}

// Name はアバタールート名を返す。
func (a *Avatar) Name() string {
	return a.Root().Name()
}

// Bind はボーン枠へノードを割り当てる。ノードはアバタールート配下である必要がある。
func (a *Avatar) Bind(slot humanoid.BoneSlot, node *Node) error {
	if !slot.IsValid() {
		return fmt.Errorf("ボーン枠が不正です: %d", int(slot))
	}
	if node != nil && !node.IsDescendantOf(a.root) {
		return fmt.Errorf("ボーン %s はアバター %s の配下ではありません", node.Name(), a.Name())
	}
	a.bones[slot] = node
	return nil
}

// BoneTransform はボーン枠に割り当てられたノードを返す。
func (a *Avatar) BoneTransform(slot humanoid.BoneSlot) *Node {
	if a == nil || !slot.IsValid() {
		return nil
	}
	return a.bones[slot]
}

// IsHuman はヒューマノイドとして有効か(Hips が割り当て済みか)を判定する。
func (a *Avatar) IsHuman() bool {
	return a != nil && a.root != nil && a.bones[humanoid.Hips] != nil
}
