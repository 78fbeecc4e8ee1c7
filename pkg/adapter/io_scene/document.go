// 指示: miu200521358
package io_scene

import (
	"fmt"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/humanoid"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
)

// sceneDocument はシーンファイルの最上位要素を表す。
type sceneDocument struct {
	Avatar                 *avatarDocument `yaml:"avatar,omitempty" json:"avatar,omitempty"`
	Outfit                 *outfitDocument `yaml:"outfit,omitempty" json:"outfit,omitempty"`
	ScaleAdjusterAvailable bool            `yaml:"scale_adjuster_available,omitempty" json:"scale_adjuster_available,omitempty"`
}

// avatarDocument はアバター要素を表す。Humanoid はボーン枠名からルート相対パスへの対応。
type avatarDocument struct {
	Root     *nodeDocument     `yaml:"root" json:"root"`
	Humanoid map[string]string `yaml:"humanoid,omitempty" json:"humanoid,omitempty"`
}

// outfitDocument は衣装要素を表す。
type outfitDocument struct {
	Root *nodeDocument `yaml:"root" json:"root"`
}

// nodeDocument はノード1件を表す。参照はすべて所属ルートからの相対パス。
type nodeDocument struct {
	Name            string                 `yaml:"name" json:"name"`
	Position        []float64              `yaml:"position,flow,omitempty" json:"position,omitempty"`
	Rotation        []float64              `yaml:"rotation,flow,omitempty" json:"rotation,omitempty"`
	Scale           []float64              `yaml:"scale,flow,omitempty" json:"scale,omitempty"`
	SkeletonDriver  bool                   `yaml:"skeleton_driver,omitempty" json:"skeleton_driver,omitempty"`
	SkinnedRootBone string                 `yaml:"skinned_root_bone,omitempty" json:"skinned_root_bone,omitempty"`
	ScaleAdjuster   *scaleAdjusterDocument `yaml:"scale_adjuster,omitempty" json:"scale_adjuster,omitempty"`
	BoneRenderer    *boneRendererDocument  `yaml:"bone_renderer,omitempty" json:"bone_renderer,omitempty"`
	Children        []*nodeDocument        `yaml:"children,omitempty" json:"children,omitempty"`
}

// scaleAdjusterDocument はスケール調整要素を表す。
type scaleAdjusterDocument struct {
	Scale []float64 `yaml:"scale,flow" json:"scale"`
}

// boneRendererDocument はボーン表示要素を表す。
type boneRendererDocument struct {
	Bones []string `yaml:"bones" json:"bones"`
	Color string   `yaml:"color,omitempty" json:"color,omitempty"`
}

// pendingReference は階層生成後に解決するパス参照を表す。
type pendingReference struct {
	node *skeleton.Node
	doc  *nodeDocument
}

// toScene は文書からシーンを生成する。
func (d *sceneDocument) toScene() (*skeleton.Scene, error) {
	scene := &skeleton.Scene{ScaleAdjusterAvailable: d.ScaleAdjusterAvailable}
	if d.Avatar != nil {
		avatar, err := d.Avatar.toAvatar()
		if err != nil {
			return nil, err
		}
		scene.Avatar = avatar
	}
	if d.Outfit != nil {
		outfit, err := buildTree(d.Outfit.Root)
		if err != nil {
			return nil, fmt.Errorf("衣装の読込に失敗しました: %w", err)
		}
		scene.Outfit = outfit
	}
	return scene, nil
}

// toAvatar はアバター要素からアバターを生成する。
func (d *avatarDocument) toAvatar() (*skeleton.Avatar, error) {
	root, err := buildTree(d.Root)
	if err != nil {
		return nil, fmt.Errorf("アバターの読込に失敗しました: %w", err)
	}
	avatar := skeleton.NewAvatar(root)
	for slotName, path := range d.Humanoid {
		slot, ok := humanoid.ParseBoneSlot(slotName)
		if !ok {
			return nil, fmt.Errorf("不明なボーン枠です: %s", slotName)
		}
		node := root.Find(path)
		if node == nil {
			return nil, fmt.Errorf("ボーン枠 %s のノードが見つかりません: %s", slotName, path)
		}
		if err := avatar.Bind(slot, node); err != nil {
			return nil, err
		}
	}
	return avatar, nil
}

// buildTree はノード要素から階層を生成し、パス参照を解決する。
func buildTree(doc *nodeDocument) (*skeleton.Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("ルートノードがありません")
	}
	pending := make([]pendingReference, 0, 8)
	root, err := buildNode(doc, &pending)
	if err != nil {
		return nil, err
	}
	for _, ref := range pending {
		if err := resolveReferences(root, ref); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// buildNode はノード要素を再帰的に変換する。
func buildNode(doc *nodeDocument, pending *[]pendingReference) (*skeleton.Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("空のノードがあります")
	}
	node := skeleton.NewNode(doc.Name)
	if doc.Position != nil {
		position, err := toVec3(doc.Position, "position", doc.Name)
		if err != nil {
			return nil, err
		}
		node.Position = position
	}
	if doc.Rotation != nil {
		if len(doc.Rotation) != 4 {
			return nil, fmt.Errorf("ノード %s の rotation は4要素である必要があります: %d", doc.Name, len(doc.Rotation))
		}
		node.Rotation = mmath.NewQuaternion(doc.Rotation[0], doc.Rotation[1], doc.Rotation[2], doc.Rotation[3])
	}
	if doc.Scale != nil {
		scale, err := toVec3(doc.Scale, "scale", doc.Name)
		if err != nil {
			return nil, err
		}
		node.Scale = scale
	}
	node.SkeletonDriver = doc.SkeletonDriver
	if doc.ScaleAdjuster != nil {
		adjuster := skeleton.NewScaleAdjuster()
		if doc.ScaleAdjuster.Scale != nil {
			scale, err := toVec3(doc.ScaleAdjuster.Scale, "scale_adjuster.scale", doc.Name)
			if err != nil {
				return nil, err
			}
			adjuster.Scale = scale
		}
		node.ScaleAdjuster = adjuster
	}
	if doc.SkinnedRootBone != "" || doc.BoneRenderer != nil {
		*pending = append(*pending, pendingReference{node: node, doc: doc})
	}
	for _, childDoc := range doc.Children {
		child, err := buildNode(childDoc, pending)
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	}
	return node, nil
}

// resolveReferences はスキンのルートボーンとボーン表示対象を解決する。
func resolveReferences(root *skeleton.Node, ref pendingReference) error {
	if ref.doc.SkinnedRootBone != "" {
		bone := root.Find(ref.doc.SkinnedRootBone)
		if bone == nil {
			return fmt.Errorf("ノード %s の skinned_root_bone が見つかりません: %s", ref.doc.Name, ref.doc.SkinnedRootBone)
		}
		ref.node.SkinnedRootBone = bone
	}
	if ref.doc.BoneRenderer == nil {
		return nil
	}
	renderer := &skeleton.BoneRenderer{Bones: make([]*skeleton.Node, 0, len(ref.doc.BoneRenderer.Bones))}
	for _, path := range ref.doc.BoneRenderer.Bones {
		bone := root.Find(path)
		if bone == nil {
			return fmt.Errorf("ノード %s のボーン表示対象が見つかりません: %s", ref.doc.Name, path)
		}
		renderer.Bones = append(renderer.Bones, bone)
	}
	if ref.doc.BoneRenderer.Color != "" {
		color, err := mmath.ParseHexColor(ref.doc.BoneRenderer.Color)
		if err != nil {
			return fmt.Errorf("ノード %s の色が不正です: %w", ref.doc.Name, err)
		}
		renderer.Color = color
	}
	ref.node.BoneRenderer = renderer
	return nil
}

// toVec3 は3要素配列をベクトルへ変換する。
func toVec3(values []float64, field string, nodeName string) (mmath.Vec3, error) {
	if len(values) != 3 {
		return mmath.Vec3{}, fmt.Errorf("ノード %s の %s は3要素である必要があります: %d", nodeName, field, len(values))
	}
	return mmath.NewVec3(values[0], values[1], values[2]), nil
}

// newSceneDocument はシーンから文書を生成する。
func newSceneDocument(scene *skeleton.Scene) (*sceneDocument, error) {
	doc := &sceneDocument{ScaleAdjusterAvailable: scene.ScaleAdjusterAvailable}
	if root := scene.Avatar.Root(); root != nil {
		rootDoc, err := newNodeDocument(root, root)
		if err != nil {
			return nil, err
		}
		avatarDoc := &avatarDocument{Root: rootDoc, Humanoid: map[string]string{}}
		for _, slot := range humanoid.BoneSlots() {
			node := scene.Avatar.BoneTransform(slot)
			if node == nil {
				continue
			}
			avatarDoc.Humanoid[slot.String()] = node.PathFrom(root)
		}
		doc.Avatar = avatarDoc
	}
	if scene.Outfit != nil {
		rootDoc, err := newNodeDocument(scene.Outfit, scene.Outfit)
		if err != nil {
			return nil, err
		}
		doc.Outfit = &outfitDocument{Root: rootDoc}
	}
	return doc, nil
}

// newNodeDocument はノードを再帰的に文書へ変換する。
func newNodeDocument(node *skeleton.Node, root *skeleton.Node) (*nodeDocument, error) {
	doc := &nodeDocument{
		Name:           node.Name(),
		SkeletonDriver: node.SkeletonDriver,
	}
	if !node.Position.Equals(mmath.Vec3Zero()) {
		doc.Position = vec3Values(node.Position)
	}
	if !node.Rotation.Equals(mmath.QuaternionIdentity()) {
		rotation := node.Rotation.Array()
		doc.Rotation = rotation[:]
	}
	if !node.Scale.IsOne() {
		doc.Scale = vec3Values(node.Scale)
	}
	if node.SkinnedRootBone != nil {
		path, err := referencePath(node.SkinnedRootBone, root, node)
		if err != nil {
			return nil, err
		}
		doc.SkinnedRootBone = path
	}
	if node.ScaleAdjuster != nil {
		doc.ScaleAdjuster = &scaleAdjusterDocument{Scale: vec3Values(node.ScaleAdjuster.Scale)}
	}
	if node.BoneRenderer != nil {
		rendererDoc := &boneRendererDocument{
			Bones: make([]string, 0, len(node.BoneRenderer.Bones)),
			Color: node.BoneRenderer.Color.Hex(),
		}
		for _, bone := range node.BoneRenderer.Bones {
			path, err := referencePath(bone, root, node)
			if err != nil {
				return nil, err
			}
			rendererDoc.Bones = append(rendererDoc.Bones, path)
		}
		doc.BoneRenderer = rendererDoc
	}
	for _, child := range node.Children() {
		childDoc, err := newNodeDocument(child, root)
		if err != nil {
			return nil, err
		}
		doc.Children = append(doc.Children, childDoc)
	}
	return doc, nil
}

// referencePath は参照先ノードの相対パスを返す。所属ルート外の参照は保存できない。
func referencePath(target *skeleton.Node, root *skeleton.Node, owner *skeleton.Node) (string, error) {
	if !target.IsDescendantOf(root) {
		return "", fmt.Errorf("ノード %s の参照先 %s が %s の配下にありません", owner.Name(), target.Name(), root.Name())
	}
	return target.PathFrom(root), nil
}

// vec3Values はベクトルを3要素配列へ変換する。
func vec3Values(v mmath.Vec3) []float64 {
	values := v.Array()
	return values[:]
}
