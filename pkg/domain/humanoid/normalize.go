// 指示: miu200521358
package humanoid

import "strings"

const (
	// boneNamePrefix は正規化時に除去するプレフィックス。
	boneNamePrefix = "bone_"
)

// NormalizeBoneName はボーン名を照合用キーへ正規化する。
// 小文字化し、先頭の "bone_" を除去してから ASCII の数字・空白・
// アンダースコア・ドットを取り除く。それ以外の文字は順序どおり残す。
func NormalizeBoneName(name string) string {
	if name == "" {
		return ""
	}

	lower := strings.ToLower(name)
	lower = strings.TrimPrefix(lower, boneNamePrefix)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if isNormalizeRemovedRune(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isNormalizeRemovedRune は正規化で除去する文字かを判定する。
func isNormalizeRemovedRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == ' ', r == '_', r == '.':
		return true
	}
	return false
}
