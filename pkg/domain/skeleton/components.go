// 指示: miu200521358
package skeleton

import "github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/mmath"

// BoneRenderer はボーン表示コンポーネントの設定を表す。
type BoneRenderer struct {
	Bones []*Node
	Color mmath.Color
}

// ScaleAdjuster は外部スケール調整コンポーネントを表す。
type ScaleAdjuster struct {
	Scale mmath.Vec3
}

// NewScaleAdjuster は等倍のスケール調整を生成する。
func NewScaleAdjuster() *ScaleAdjuster {
	return &ScaleAdjuster{Scale: mmath.Vec3One()}
}

// BoneScaleData はボーン名とスケールの記録1件を表す。
type BoneScaleData struct {
	BoneName string
	Scale    mmath.Vec3
}

// BoneScalePreset はボーンスケール記録の集合を表す。
type BoneScalePreset struct {
	Title  string
	Scales []BoneScaleData
}

// NodeScaleAdjusters はノードに直接保持するスケール調整の操作を表す。
type NodeScaleAdjusters struct{}

// ScaleAdjuster はノードのスケール調整を返す。
func (NodeScaleAdjusters) ScaleAdjuster(node *Node) *ScaleAdjuster {
	if node == nil {
		return nil
	}
	return node.ScaleAdjuster
}

// AttachScaleAdjuster はスケール調整を付与し、既存があればそれを返す。
func (NodeScaleAdjusters) AttachScaleAdjuster(node *Node) *ScaleAdjuster {
	if node == nil {
		return nil
	}
	if node.ScaleAdjuster == nil {
		node.ScaleAdjuster = NewScaleAdjuster()
	}
	return node.ScaleAdjuster
}
