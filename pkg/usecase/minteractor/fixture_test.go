// 指示: miu200521358
package minteractor

import (
	"strings"
	"testing"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/humanoid"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
)

// avatarBoneSpec はテスト用アバターボーンの定義を表す。
type avatarBoneSpec struct {
	slot   humanoid.BoneSlot
	name   string
	parent string
}

// newTestAvatar は Avatar/Armature 配下にボーンを生成して割り当てたアバターを返す。
func newTestAvatar(t *testing.T, specs []avatarBoneSpec) *skeleton.Avatar {
	t.Helper()
	root := skeleton.NewNode("Avatar")
	armature := root.NewChild("Armature")
	avatar := skeleton.NewAvatar(root)
	nodes := map[string]*skeleton.Node{"Armature": armature}
	for _, spec := range specs {
		parent := nodes[spec.parent]
		if parent == nil {
			t.Fatalf("parent not found: %s", spec.parent)
		}
		node := parent.NewChild(spec.name)
		nodes[spec.name] = node
		if err := avatar.Bind(spec.slot, node); err != nil {
			t.Fatalf("bind failed: %v", err)
		}
	}
	return avatar
}

// newStandardAvatar は標準名のボーンを持つアバターを返す。
func newStandardAvatar(t *testing.T, withUpperChest bool) *skeleton.Avatar {
	t.Helper()
	specs := []avatarBoneSpec{
		{slot: humanoid.Hips, name: "Hips", parent: "Armature"},
		{slot: humanoid.Spine, name: "Spine", parent: "Hips"},
		{slot: humanoid.Chest, name: "Chest", parent: "Spine"},
	}
	neckParent := "Chest"
	if withUpperChest {
		specs = append(specs, avatarBoneSpec{slot: humanoid.UpperChest, name: "UpperChest", parent: "Chest"})
		neckParent = "UpperChest"
	}
	specs = append(specs,
		avatarBoneSpec{slot: humanoid.Neck, name: "Neck", parent: neckParent},
		avatarBoneSpec{slot: humanoid.Head, name: "Head", parent: "Neck"},
		avatarBoneSpec{slot: humanoid.LeftUpperLeg, name: "LeftUpperLeg", parent: "Hips"},
		avatarBoneSpec{slot: humanoid.RightUpperLeg, name: "RightUpperLeg", parent: "Hips"},
	)
	return newTestAvatar(t, specs)
}

// buildTree は "a/b/c" 形式のパス列からノードツリーを生成する。
func buildTree(rootName string, paths ...string) *skeleton.Node {
	root := skeleton.NewNode(rootName)
	for _, path := range paths {
		current := root
		for _, part := range strings.Split(path, "/") {
			next := current.Find(part)
			if next == nil {
				next = current.NewChild(part)
			}
			current = next
		}
	}
	return root
}

// mustFind はパスのノードを返す。
func mustFind(t *testing.T, root *skeleton.Node, path string) *skeleton.Node {
	t.Helper()
	node := root.Find(path)
	if node == nil {
		t.Fatalf("node not found: %s", path)
	}
	return node
}

// outfitBonesOf は名前列からマッチング対象ボーンを生成する。
func outfitBonesOf(names ...string) []OutfitBone {
	bones := make([]OutfitBone, 0, len(names))
	for _, name := range names {
		bones = append(bones, OutfitBone{Name: name, Node: skeleton.NewNode(name)})
	}
	return bones
}

// assertClaimedOnce は同じアバターボーンが複数の対応に現れないことを検証する。
func assertClaimedOnce(t *testing.T, matches []BoneMatch) {
	t.Helper()
	seen := map[*skeleton.Node]struct{}{}
	for _, match := range matches {
		if match.AvatarBone == nil {
			continue
		}
		if _, exists := seen[match.AvatarBone]; exists {
			t.Fatalf("avatar bone claimed twice: %s", match.AvatarBone.Name())
		}
		seen[match.AvatarBone] = struct{}{}
	}
}
