// 指示: miu200521358
package minteractor

import (
	"testing"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/humanoid"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
)

// matchSummary は比較用の対応要約を表す。
type matchSummary struct {
	outfit     string
	avatar     string
	slot       humanoid.BoneSlot
	confidence float64
}

// summarizeMatches は対応結果を比較用に要約する。
func summarizeMatches(matches []BoneMatch) []matchSummary {
	summaries := make([]matchSummary, 0, len(matches))
	for _, match := range matches {
		summaries = append(summaries, matchSummary{
			outfit:     match.OutfitBone.Name(),
			avatar:     match.AvatarBone.Name(),
			slot:       match.Slot,
			confidence: match.Confidence,
		})
	}
	return summaries
}

// assertSummaries は対応要約の一致を検証する。
func assertSummaries(t *testing.T, got []matchSummary, want []matchSummary) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("match count mismatch: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("match[%d] mismatch: got=%+v want=%+v", i, got[i], want[i])
		}
	}
}

func TestGetDetailedMatchesInfersCostumePrefix(t *testing.T) {
	avatar := newTestAvatar(t, []avatarBoneSpec{
		{slot: humanoid.Hips, name: "Hips", parent: "Armature"},
		{slot: humanoid.Spine, name: "J_Spine", parent: "Hips"},
		{slot: humanoid.Chest, name: "J_Chest", parent: "J_Spine"},
	})
	outfit := buildTree("Outfit", "Body", "Armature/Costume_Hips/Costume_Spine/Costume_Chest")

	matches := GetDetailedMatches(outfit, avatar)
	assertSummaries(t, summarizeMatches(matches), []matchSummary{
		{outfit: "Costume_Hips", avatar: "Hips", slot: humanoid.Hips, confidence: ConfidenceExactName},
		{outfit: "Costume_Spine", avatar: "J_Spine", slot: humanoid.Spine, confidence: ConfidenceBestSlot},
		{outfit: "Costume_Chest", avatar: "J_Chest", slot: humanoid.Chest, confidence: ConfidenceBestSlot},
	})
	assertClaimedOnce(t, matches)
}

func TestGetDetailedMatchesPrefersExactAvatarName(t *testing.T) {
	avatar := newStandardAvatar(t, true)
	outfit := buildTree("Outfit", "Armature/Costume_Hips/Costume_Spine")

	matches := GetDetailedMatches(outfit, avatar)
	assertSummaries(t, summarizeMatches(matches), []matchSummary{
		{outfit: "Costume_Hips", avatar: "Hips", slot: humanoid.Hips, confidence: ConfidenceExactName},
		{outfit: "Costume_Spine", avatar: "Spine", slot: humanoid.Spine, confidence: ConfidenceExactName},
	})
}

func TestGetDetailedMatchesReportsUpperChestMissingOnAvatar(t *testing.T) {
	avatar := newStandardAvatar(t, false)
	outfit := buildTree("Outfit", "Armature/Hips/Spine/Chest/UpperChest/Neck/Head")

	matches := GetDetailedMatches(outfit, avatar)
	got := summarizeMatches(matches)
	assertSummaries(t, got, []matchSummary{
		{outfit: "Hips", avatar: "Hips", slot: humanoid.Hips, confidence: ConfidenceExactName},
		{outfit: "Spine", avatar: "Spine", slot: humanoid.Spine, confidence: ConfidenceExactName},
		{outfit: "Chest", avatar: "Chest", slot: humanoid.Chest, confidence: ConfidenceExactName},
		{outfit: "UpperChest", avatar: "", slot: humanoid.UpperChest, confidence: ConfidenceUnmappedUpperChest},
		{outfit: "Neck", avatar: "Neck", slot: humanoid.Neck, confidence: ConfidenceExactName},
		{outfit: "Head", avatar: "Head", slot: humanoid.Head, confidence: ConfidenceExactName},
	})
	if matches[3].AvatarBone != nil {
		t.Fatalf("upper chest should not be assigned: got=%s", matches[3].AvatarBone.Name())
	}
}

func TestMatchOutfitBonesSharedKeyFallsThroughToCandidates(t *testing.T) {
	hips := skeleton.NewNode("Hips")
	thigh := skeleton.NewNode("Thigh_Left_Custom")
	shin := skeleton.NewNode("Shin_Left_Custom")
	avatarSlotMap := map[humanoid.BoneSlot]*skeleton.Node{
		humanoid.Hips:         hips,
		humanoid.LeftUpperLeg: thigh,
		humanoid.LeftLowerLeg: shin,
	}

	matches := MatchOutfitBones(outfitBonesOf("Leg_L", "leg_L", "LEG_L"), avatarSlotMap, "Hips", []string{"Leg_L"})
	assertSummaries(t, summarizeMatches(matches), []matchSummary{
		{outfit: "Leg_L", avatar: "Thigh_Left_Custom", slot: humanoid.LeftUpperLeg, confidence: ConfidenceBestSlot},
		{outfit: "leg_L", avatar: "Shin_Left_Custom", slot: humanoid.LeftLowerLeg, confidence: ConfidenceCandidateSlot},
	})
	assertClaimedOnce(t, matches)
}

func TestMatchOutfitBonesClaimsNodeBoundToSeveralSlots(t *testing.T) {
	hips := skeleton.NewNode("Hips")
	chest := skeleton.NewNode("Chest")
	avatarSlotMap := map[humanoid.BoneSlot]*skeleton.Node{
		humanoid.Hips:       hips,
		humanoid.Chest:      chest,
		humanoid.UpperChest: chest,
	}

	matches := MatchOutfitBones(outfitBonesOf("Chest", "UpperChest"), avatarSlotMap, "Hips", nil)
	assertSummaries(t, summarizeMatches(matches), []matchSummary{
		{outfit: "Chest", avatar: "Chest", slot: humanoid.Chest, confidence: ConfidenceExactName},
	})
	assertClaimedOnce(t, matches)
}

func TestMatchOutfitBonesIsDeterministic(t *testing.T) {
	avatar := newStandardAvatar(t, true)
	outfit := buildTree("Outfit",
		"Armature/Hips/Spine/Chest/UpperChest/Neck/Head",
		"Armature/Hips/Leg_L",
		"Armature/Hips/leg_L",
		"Armature/Hips/Leg_R",
		"Armature/Hips/skirt_01",
	)

	first := summarizeMatches(GetDetailedMatches(outfit, avatar))
	for i := 0; i < 20; i++ {
		assertSummaries(t, summarizeMatches(GetDetailedMatches(outfit, avatar)), first)
	}
	assertClaimedOnce(t, GetDetailedMatches(outfit, avatar))
}

func TestMatchOutfitBonesWithoutHipsNameSkipsInference(t *testing.T) {
	hips := skeleton.NewNode("Hips")
	avatarSlotMap := map[humanoid.BoneSlot]*skeleton.Node{humanoid.Hips: hips}

	matches := MatchOutfitBones(outfitBonesOf("Costume_Hips"), avatarSlotMap, "", []string{"Costume_Hips"})
	if len(matches) != 0 {
		t.Fatalf("prefixed name should stay unmatched: got=%v", summarizeMatches(matches))
	}
	if got := MatchOutfitBones(nil, avatarSlotMap, "Hips", nil); len(got) != 0 {
		t.Fatalf("empty outfit should produce no matches: got=%d", len(got))
	}
	if got := MatchOutfitBones(outfitBonesOf("Hips"), nil, "Hips", nil); len(got) != 0 {
		t.Fatalf("empty avatar should produce no matches: got=%d", len(got))
	}
}

func TestGetDetailedMatchesRequiresHumanoidAvatar(t *testing.T) {
	outfit := buildTree("Outfit", "Armature/Hips")
	notHuman := skeleton.NewAvatar(skeleton.NewNode("Avatar"))
	if got := GetDetailedMatches(outfit, notHuman); len(got) != 0 {
		t.Fatalf("non humanoid avatar should produce no matches: got=%d", len(got))
	}
	if got := GetDetailedMatches(nil, newStandardAvatar(t, true)); len(got) != 0 {
		t.Fatalf("nil outfit should produce no matches: got=%d", len(got))
	}
	if got := GetDetailedMatches(outfit, nil); len(got) != 0 {
		t.Fatalf("nil avatar should produce no matches: got=%d", len(got))
	}
}

func TestCollectOutfitBonesSkipsOutfitRoot(t *testing.T) {
	outfit := buildTree("Hips", "Spine/Chest")
	bones := CollectOutfitBones(outfit)
	names := make([]string, 0, len(bones))
	for _, bone := range bones {
		names = append(names, bone.Name)
	}
	if len(names) != 2 || names[0] != "Spine" || names[1] != "Chest" {
		t.Fatalf("outfit bones mismatch: got=%v", names)
	}
}

func TestMatchToAvatarReturnsEveryMatchedOutfitBone(t *testing.T) {
	avatar := newStandardAvatar(t, false)
	outfit := buildTree("Outfit", "Armature/Hips/Spine/Chest/UpperChest")

	bones := MatchToAvatar(outfit, avatar)
	if len(bones) != 4 {
		t.Fatalf("matched bone count mismatch: got=%d want=%d", len(bones), 4)
	}
	foundUpperChest := false
	for _, bone := range bones {
		if bone.Name() == "UpperChest" {
			foundUpperChest = true
		}
	}
	if !foundUpperChest {
		t.Fatalf("upper chest without avatar bone should be included")
	}
}

func TestInferPrefixSuffixAndStrip(t *testing.T) {
	prefix, suffix, ok := InferPrefixSuffix("Costume_HIPS_end", "Hips")
	if !ok || prefix != "Costume_" || suffix != "_end" {
		t.Fatalf("infer mismatch: prefix=%q suffix=%q ok=%v", prefix, suffix, ok)
	}
	if _, _, ok := InferPrefixSuffix("Spine", "Hips"); ok {
		t.Fatalf("missing part should not infer")
	}
	if _, _, ok := InferPrefixSuffix("", "Hips"); ok {
		t.Fatalf("empty name should not infer")
	}

	if got := StripPrefixSuffix("Costume_Spine_end", "Costume_", "_end"); got != "Spine" {
		t.Fatalf("strip mismatch: got=%s want=%s", got, "Spine")
	}
	if got := StripPrefixSuffix("costume_Spine", "Costume_", ""); got != "costume_Spine" {
		t.Fatalf("strip should be case sensitive: got=%s", got)
	}
}

func TestOutfitHasUpperChest(t *testing.T) {
	if !OutfitHasUpperChest(buildTree("Outfit", "Armature/Hips/Spine/Chest/J_Bip_C_UpperChest")) {
		t.Fatalf("upper chest should be detected")
	}
	if OutfitHasUpperChest(buildTree("Outfit", "Armature/Hips/Spine/Chest")) {
		t.Fatalf("upper chest should not be detected")
	}
	if OutfitHasUpperChest(nil) {
		t.Fatalf("nil outfit should not have upper chest")
	}
}
