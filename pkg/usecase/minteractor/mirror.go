// 指示: miu200521358
package minteractor

import (
	"strings"
	"sync"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
)

// mirrorSuffixRule は末尾の左右表記の置換規則を表す。
type mirrorSuffixRule struct {
	left  string
	right string
}

// mirrorSuffixRules は末尾置換規則を優先順に並べたもの。
var mirrorSuffixRules = []mirrorSuffixRule{
	{left: "_L", right: "_R"},
	{left: ".L", right: ".R"},
}

// mirrorWordRules は部分文字列置換規則を優先順に並べたもの。先頭一致箇所のみ置換する。
var mirrorWordRules = []mirrorSuffixRule{
	{left: "Left", right: "Right"},
	{left: "左", right: "右"},
}

// MirrorName はボーン名から左右反対側のボーン名を導出する。該当しない場合は false を返す。
func MirrorName(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, rule := range mirrorSuffixRules {
		if strings.HasSuffix(name, rule.left) {
			return strings.TrimSuffix(name, rule.left) + rule.right, true
		}
		if strings.HasSuffix(name, rule.right) {
			return strings.TrimSuffix(name, rule.right) + rule.left, true
		}
	}
	for _, rule := range mirrorWordRules {
		if strings.Contains(name, rule.left) {
			return strings.Replace(name, rule.left, rule.right, 1), true
		}
		if strings.Contains(name, rule.right) {
			return strings.Replace(name, rule.right, rule.left, 1), true
		}
	}
	return "", false
}

// MirrorCache はルート配下の左右対ボーンを保持する。ルートが変わると全件再構築する。
type MirrorCache struct {
	mu    sync.Mutex
	root  *skeleton.Node
	pairs map[*skeleton.Node]*skeleton.Node
}

// NewMirrorCache は空の左右対キャッシュを生成する。
func NewMirrorCache() *MirrorCache {
	return &MirrorCache{pairs: map[*skeleton.Node]*skeleton.Node{}}
}

// Update は選択ノードのルートを求め、前回と異なる場合にキャッシュを再構築する。再構築した場合 true を返す。
func (c *MirrorCache) Update(selection *skeleton.Node) bool {
	if selection == nil {
		return false
	}
	root := skeleton.FindRoot(selection)

	c.mu.Lock()
	defer c.mu.Unlock()
	if root == c.root && root != nil {
		return false
	}
	c.root = root
	c.pairs = buildMirrorPairs(root)
	return true
}

// Mirror はノードの左右対ボーンを返す。
func (c *MirrorCache) Mirror(node *skeleton.Node) (*skeleton.Node, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	mirror, ok := c.pairs[node]
	return mirror, ok && mirror != nil
}

// PairCount は保持している左右対の件数を返す。
func (c *MirrorCache) PairCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pairs) / 2
}

// Root は現在のキャッシュ対象ルートを返す。
func (c *MirrorCache) Root() *skeleton.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root
}

// buildMirrorPairs はルート配下の全ノードについて左右対を求める。同名は深さ優先で最初のノードを採用する。
func buildMirrorPairs(root *skeleton.Node) map[*skeleton.Node]*skeleton.Node {
	pairs := map[*skeleton.Node]*skeleton.Node{}
	if root == nil {
		return pairs
	}
	nodes := root.Descendants()
	firstByName := make(map[string]*skeleton.Node, len(nodes))
	for _, node := range nodes {
		if _, exists := firstByName[node.Name()]; !exists {
			firstByName[node.Name()] = node
		}
	}
	for _, node := range nodes {
		mirrorName, ok := MirrorName(node.Name())
		if !ok {
			continue
		}
		if match := firstByName[mirrorName]; match != nil && match != node {
			pairs[node] = match
		}
	}
	return pairs
}
