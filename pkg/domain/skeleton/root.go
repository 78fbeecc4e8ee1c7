// 指示: miu200521358
package skeleton

import "strings"

// armatureChildNames は衣装直下で Armature とみなす子ノード名を優先順で保持する。
var armatureChildNames = []string{"Armature", "armature", "Skeleton", "skeleton", "Root", "root"}

// armatureLikeKeywords は Armature らしい子ノード名に含まれる語を保持する。
var armatureLikeKeywords = []string{"armature", "skeleton", "root"}

// FindRoot は start から祖先方向へ辿り、スケルトン駆動マーカーを持つか
// 名前に "armature" を含む最初のノードを返す。見つからなければ最上位ノードを返す。
func FindRoot(start *Node) *Node {
	if start == nil {
		return nil
	}
	current := start
	for current.parent != nil {
		if current.SkeletonDriver {
			return current
		}
		if strings.Contains(strings.ToLower(current.name), "armature") {
			return current
		}
		current = current.parent
	}
	return current
}

// FindArmature は衣装ルート配下の Armature を探す。見つからなければ nil を返す。
func FindArmature(root *Node) *Node {
	if root == nil {
		return nil
	}

	for _, name := range armatureChildNames {
		if armature := root.Find(name); armature != nil {
			return armature
		}
	}

	rootBone := findSkinnedRootBone(root)
	if rootBone == nil {
		return nil
	}
	// ルートボーンの祖先に Armature/Skeleton があればそれを採用する。
	for parent := rootBone.parent; parent != nil && parent != root; parent = parent.parent {
		lower := strings.ToLower(parent.name)
		if strings.Contains(lower, "armature") || strings.Contains(lower, "skeleton") {
			return parent
		}
	}
	if rootBone.parent != nil && rootBone.parent != root {
		return rootBone.parent
	}
	return nil
}

// FindArmatureOrSelf は FindArmature が見つからない場合に root 自身を返す。
func FindArmatureOrSelf(root *Node) *Node {
	if armature := FindArmature(root); armature != nil {
		return armature
	}
	return root
}

// HasArmatureLikeChild は直下に Armature らしい名前の子を持つかを判定する。
func HasArmatureLikeChild(root *Node) bool {
	if root == nil {
		return false
	}
	for _, child := range root.children {
		lower := strings.ToLower(child.name)
		for _, keyword := range armatureLikeKeywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}

// findSkinnedRootBone は配下で最初に見つかったスキンメッシュのルートボーンを返す。
func findSkinnedRootBone(root *Node) *Node {
	var rootBone *Node
	root.Walk(func(node *Node) bool {
		if node.SkinnedRootBone != nil {
			rootBone = node.SkinnedRootBone
			return false
		}
		return true
	})
	return rootBone
}
