// 指示: miu200521358
// Package skeleton はボーン階層(名前付き親子ノード)とアバター情報を提供する。
package skeleton

import (
	"strings"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/mmath"
)

const (
	// pathSeparator はノードパスの区切り文字。
	pathSeparator = "/"
)

// Node は名前付きの親子ノード(ボーン)を表す。位置/回転/スケールは親からのローカル値。
type Node struct {
	name     string
	parent   *Node
	children []*Node

	Position mmath.Vec3
	Rotation mmath.Quaternion
	Scale    mmath.Vec3

	// SkeletonDriver はスケルトンを駆動するコンポーネント(Animator相当)を持つかを表す。
	SkeletonDriver bool
	// SkinnedRootBone は配下のスキンメッシュが参照するルートボーン。
	SkinnedRootBone *Node
	// ScaleAdjuster は任意の外部スケール調整コンポーネント。
	ScaleAdjuster *ScaleAdjuster
	// BoneRenderer はボーン表示コンポーネント。
	BoneRenderer *BoneRenderer
}

// NewNode は単位変換のノードを生成する。
func NewNode(name string) *Node {
	return &Node{
		name:     name,
		Rotation: mmath.QuaternionIdentity(),
		Scale:    mmath.Vec3One(),
	}
}

// Name はノード名を返す。
func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	return n.name
}

// SetName はノード名を設定する。
func (n *Node) SetName(name string) {
	n.name = name
}

// Parent は親ノードを返す。
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Children は直下の子ノードを返す。
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return append([]*Node(nil), n.children...)
}

// ChildCount は直下の子ノード数を返す。
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// AddChild は子ノードを末尾へ追加する。既存の親からは外す。
func (n *Node) AddChild(child *Node) *Node {
	if n == nil || child == nil || child == n || n.IsDescendantOf(child) {
		return child
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// NewChild は子ノードを生成して追加する。
func (n *Node) NewChild(name string) *Node {
	return n.AddChild(NewNode(name))
}

// RemoveChild は直下の子ノードを外す。
func (n *Node) RemoveChild(child *Node) bool {
	if n == nil || child == nil {
		return false
	}
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Find は "a/b/c" 形式の相対パスで子孫ノードを探す。同名の子は先頭を採用する。
func (n *Node) Find(path string) *Node {
	if n == nil {
		return nil
	}
	current := n
	for _, part := range strings.Split(path, pathSeparator) {
		if part == "" {
			continue
		}
		var next *Node
		for _, child := range current.children {
			if child.name == part {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		current = next
	}
	return current
}

// FindByName は深さ優先で最初に見つかった同名ノードを返す。自身も対象に含む。
func (n *Node) FindByName(name string) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if node.name == name {
			found = node
			return false
		}
		return true
	})
	return found
}

// PathFrom は root からの相対パスを返す。root 配下でなければ空文字を返す。
func (n *Node) PathFrom(root *Node) string {
	if n == nil || root == nil || !n.IsDescendantOf(root) {
		return ""
	}
	parts := make([]string, 0, 8)
	for current := n; current != root; current = current.parent {
		parts = append(parts, current.name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, pathSeparator)
}

// Walk は自身を含めて深さ優先(前順)で巡回する。fn が false を返すと打ち切る。
func (n *Node) Walk(fn func(node *Node) bool) {
	if n == nil {
		return
	}
	n.walk(fn)
}

// walk は巡回本体。打ち切り時に false を返す。
func (n *Node) walk(fn func(node *Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.children {
		if !child.walk(fn) {
			return false
		}
	}
	return true
}

// Descendants は自身を含む全ノードを深さ優先(前順)で返す。
func (n *Node) Descendants() []*Node {
	nodes := make([]*Node, 0, 64)
	n.Walk(func(node *Node) bool {
		nodes = append(nodes, node)
		return true
	})
	return nodes
}

// IsDescendantOf は自身が ancestor 自身かその子孫かを判定する。
func (n *Node) IsDescendantOf(ancestor *Node) bool {
	if n == nil || ancestor == nil {
		return false
	}
	for current := n; current != nil; current = current.parent {
		if current == ancestor {
			return true
		}
	}
	return false
}

// Top は最上位の祖先を返す。
func (n *Node) Top() *Node {
	if n == nil {
		return nil
	}
	current := n
	for current.parent != nil {
		current = current.parent
	}
	return current
}
