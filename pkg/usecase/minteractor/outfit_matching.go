// 指示: miu200521358
package minteractor

import (
	"strings"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/humanoid"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/port/moutput"
)

// minPrefixSuffixHits はプレフィックス/サフィックス採用に必要な一致数。
const minPrefixSuffixHits = 2

// avatarBoneTable はボーン枠ごとのアバターボーンを表す。
type avatarBoneTable [humanoid.SlotCount]*skeleton.Node

// claimSet は1回のマッチングで割り当て済みになったアバターボーンを表す。
type claimSet struct {
	bones   *avatarBoneTable
	claimed [humanoid.SlotCount]bool
}

// newAvatarBoneTable はボーン枠マップからアバターボーン表を生成する。
func newAvatarBoneTable(avatarSlotMap map[humanoid.BoneSlot]*skeleton.Node) *avatarBoneTable {
	table := &avatarBoneTable{}
	for slot, node := range avatarSlotMap {
		if slot.IsValid() && node != nil {
			table[slot] = node
		}
	}
	return table
}

// isEmpty はアバターボーンが1件も無いかを判定する。
func (t *avatarBoneTable) isEmpty() bool {
	for _, node := range t {
		if node != nil {
			return false
		}
	}
	return true
}

// hasExactName はボーン枠順に大文字小文字を無視して同名のアバターボーンがあるかを判定する。
func (t *avatarBoneTable) hasExactName(name string) bool {
	for _, node := range t {
		if node != nil && strings.EqualFold(name, node.Name()) {
			return true
		}
	}
	return false
}

// newClaimSet は割り当て管理を生成する。
func newClaimSet(bones *avatarBoneTable) *claimSet {
	return &claimSet{bones: bones}
}

// available はボーン枠のアバターボーンが未割り当てで存在するかを判定する。
func (c *claimSet) available(slot humanoid.BoneSlot) bool {
	return slot.IsValid() && c.bones[slot] != nil && !c.claimed[slot]
}

// claim はアバターボーンを割り当て済みにする。同じノードを持つ全ボーン枠が対象になる。
func (c *claimSet) claim(node *skeleton.Node) {
	for slot, bone := range c.bones {
		if bone == node {
			c.claimed[slot] = true
		}
	}
}

// MatchOutfitBones は衣装ボーン列をアバターのボーン枠マップへ対応付ける。
// outfitBones は深さ優先順で渡す。rootChildNames はプレフィックス推定に使う衣装アーマチュア直下の子名。
func MatchOutfitBones(
	outfitBones []OutfitBone,
	avatarSlotMap map[humanoid.BoneSlot]*skeleton.Node,
	avatarHipsName string,
	rootChildNames []string,
) []BoneMatch {
	if len(outfitBones) == 0 {
		return nil
	}
	table := newAvatarBoneTable(avatarSlotMap)
	index := humanoid.DefaultPatternIndex()
	prefix, suffix := inferPrefixSuffix(rootChildNames, outfitBones, table, avatarHipsName, index)

	claims := newClaimSet(table)
	hasUpperChest := table[humanoid.UpperChest] != nil
	results := make([]BoneMatch, 0, len(outfitBones))
	for _, bone := range outfitBones {
		match, ok := matchOutfitBone(bone, prefix, suffix, hasUpperChest, claims, index)
		if !ok {
			continue
		}
		results = append(results, match)
		if match.AvatarBone != nil {
			claims.claim(match.AvatarBone)
		}
	}
	return results
}

// matchOutfitBone は衣装ボーン1件を優先順位に従って対応付ける。
func matchOutfitBone(
	bone OutfitBone,
	prefix string,
	suffix string,
	hasUpperChest bool,
	claims *claimSet,
	index *humanoid.PatternIndex,
) (BoneMatch, bool) {
	baseName := StripPrefixSuffix(bone.Name, prefix, suffix)
	if baseName == "" {
		return BoneMatch{}, false
	}

	for _, slot := range humanoid.BoneSlots() {
		if !claims.available(slot) {
			continue
		}
		if strings.EqualFold(baseName, claims.bones[slot].Name()) {
			return newBoneMatch(bone, claims.bones[slot], slot, ConfidenceExactName), true
		}
	}

	key := humanoid.NormalizeBoneName(baseName)
	if slot, ok := index.BestSlotFor(key); ok {
		if slot == humanoid.UpperChest && !hasUpperChest {
			return newBoneMatch(bone, nil, slot, ConfidenceUnmappedUpperChest), true
		}
		if claims.available(slot) {
			return newBoneMatch(bone, claims.bones[slot], slot, ConfidenceBestSlot), true
		}
	}

	for _, slot := range index.AllSlotsFor(key) {
		if claims.available(slot) {
			return newBoneMatch(bone, claims.bones[slot], slot, ConfidenceCandidateSlot), true
		}
	}
	return BoneMatch{}, false
}

// newBoneMatch は対応1件を生成する。
func newBoneMatch(bone OutfitBone, avatarBone *skeleton.Node, slot humanoid.BoneSlot, confidence float64) BoneMatch {
	return BoneMatch{OutfitBone: bone.Node, AvatarBone: avatarBone, Slot: slot, Confidence: confidence}
}

// inferPrefixSuffix は衣装アーマチュア直下の子名からHips名を基準にプレフィックス/サフィックスを推定する。
func inferPrefixSuffix(
	rootChildNames []string,
	outfitBones []OutfitBone,
	table *avatarBoneTable,
	avatarHipsName string,
	index *humanoid.PatternIndex,
) (string, string) {
	if table.isEmpty() || avatarHipsName == "" {
		return "", ""
	}
	knownParts := append(humanoid.Patterns(humanoid.Hips), avatarHipsName)
	for _, childName := range rootChildNames {
		for _, known := range knownParts {
			prefix, suffix, ok := InferPrefixSuffix(childName, known)
			if !ok {
				continue
			}
			if countPrefixSuffixHits(outfitBones, table, prefix, suffix, index) >= minPrefixSuffixHits {
				return prefix, suffix
			}
		}
	}
	return "", ""
}

// countPrefixSuffixHits は除去後の名前がアバターボーン名または認識可能名になる件数を数える。
// 1件のボーンが両方に該当する場合は2件として数える。
func countPrefixSuffixHits(
	outfitBones []OutfitBone,
	table *avatarBoneTable,
	prefix string,
	suffix string,
	index *humanoid.PatternIndex,
) int {
	count := 0
	for _, bone := range outfitBones {
		baseName := StripPrefixSuffix(bone.Name, prefix, suffix)
		if baseName == "" {
			continue
		}
		if table.hasExactName(baseName) {
			count++
		}
		if index.IsRecognizedBoneName(baseName) {
			count++
		}
	}
	return count
}

// InferPrefixSuffix はボーン名中の既知部分を大文字小文字を無視して探し、前後をプレフィックス/サフィックスとして返す。
func InferPrefixSuffix(boneName string, knownPart string) (string, string, bool) {
	if boneName == "" || knownPart == "" {
		return "", "", false
	}
	at := indexFold(boneName, knownPart)
	if at < 0 {
		return "", "", false
	}
	return boneName[:at], boneName[at+len(knownPart):], true
}

// StripPrefixSuffix はボーン名からプレフィックスとサフィックスを除去する。
func StripPrefixSuffix(boneName string, prefix string, suffix string) string {
	if boneName == "" {
		return boneName
	}
	if prefix != "" {
		boneName = strings.TrimPrefix(boneName, prefix)
	}
	if suffix != "" {
		boneName = strings.TrimSuffix(boneName, suffix)
	}
	return boneName
}

// indexFold は大文字小文字を無視した部分文字列の先頭位置を返す。
func indexFold(s string, substr string) int {
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}

// CollectAvatarBoneMap はアバターのボーン枠ごとの割り当てを返す。ヒューマノイドでない場合は空。
func CollectAvatarBoneMap(avatar moutput.IHumanoidAvatar) map[humanoid.BoneSlot]*skeleton.Node {
	result := map[humanoid.BoneSlot]*skeleton.Node{}
	if !IsHumanoidAvatar(avatar) {
		return result
	}
	for _, slot := range humanoid.BoneSlots() {
		if node := avatar.BoneTransform(slot); node != nil {
			result[slot] = node
		}
	}
	return result
}

// CollectOutfitBones は衣装アーマチュア配下のボーンを深さ優先順で返す。衣装ルート自身は含めない。
func CollectOutfitBones(outfitRoot *skeleton.Node) []OutfitBone {
	armature := skeleton.FindArmatureOrSelf(outfitRoot)
	if armature == nil {
		return nil
	}
	nodes := armature.Descendants()
	bones := make([]OutfitBone, 0, len(nodes))
	for _, node := range nodes {
		if node == outfitRoot {
			continue
		}
		bones = append(bones, OutfitBone{Name: node.Name(), Node: node})
	}
	return bones
}

// GetDetailedMatches は衣装ルート配下のボーンをアバターへ対応付けた詳細結果を返す。
func GetDetailedMatches(outfitRoot *skeleton.Node, avatar moutput.IHumanoidAvatar) []BoneMatch {
	if outfitRoot == nil || !IsHumanoidAvatar(avatar) {
		return nil
	}
	avatarSlotMap := CollectAvatarBoneMap(avatar)
	hipsName := ""
	if hips := avatarSlotMap[humanoid.Hips]; hips != nil {
		hipsName = hips.Name()
	}

	armature := skeleton.FindArmatureOrSelf(outfitRoot)
	children := armature.Children()
	childNames := make([]string, 0, len(children))
	for _, child := range children {
		childNames = append(childNames, child.Name())
	}
	return MatchOutfitBones(CollectOutfitBones(outfitRoot), avatarSlotMap, hipsName, childNames)
}

// MatchToAvatar はマッチした衣装ボーンをすべて返す。
// アバター側に対応ボーンがない UpperChest も含む。
func MatchToAvatar(outfitRoot *skeleton.Node, avatar moutput.IHumanoidAvatar) []*skeleton.Node {
	matches := GetDetailedMatches(outfitRoot, avatar)
	bones := make([]*skeleton.Node, 0, len(matches))
	for _, match := range matches {
		bones = append(bones, match.OutfitBone)
	}
	return bones
}

// OutfitHasUpperChest は衣装配下にUpperChestと認識できるボーンがあるかを判定する。
func OutfitHasUpperChest(outfitRoot *skeleton.Node) bool {
	if outfitRoot == nil {
		return false
	}
	index := humanoid.DefaultPatternIndex()
	found := false
	outfitRoot.Walk(func(node *skeleton.Node) bool {
		if slot, ok := index.MatchBoneName(node.Name()); ok && slot == humanoid.UpperChest {
			found = true
			return false
		}
		return true
	})
	return found
}

// IsHumanoidAvatar はアバターがヒューマノイドとして有効かを判定する。
func IsHumanoidAvatar(avatar moutput.IHumanoidAvatar) bool {
	return avatar != nil && avatar.IsHuman()
}
