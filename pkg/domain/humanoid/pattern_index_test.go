// 指示: miu200521358
package humanoid

import (
	"slices"
	"sync"
	"testing"
)

func TestBoneSlotsAreOrderedAndNamed(t *testing.T) {
	slots := BoneSlots()
	if len(slots) != 55 {
		t.Fatalf("slot count mismatch: got=%d want=%d", len(slots), 55)
	}
	if Hips != 0 || UpperChest != 54 || RightLittleDistal != 53 {
		t.Fatalf("slot order mismatch: hips=%d upperChest=%d rightLittleDistal=%d", Hips, UpperChest, RightLittleDistal)
	}

	seen := map[string]struct{}{}
	for i, slot := range slots {
		if int(slot) != i {
			t.Fatalf("slot index mismatch: got=%d want=%d", slot, i)
		}
		name := slot.String()
		if _, exists := seen[name]; exists {
			t.Fatalf("slot name should be unique: %s", name)
		}
		seen[name] = struct{}{}

		parsed, ok := ParseBoneSlot(name)
		if !ok || parsed != slot {
			t.Fatalf("parse mismatch: name=%s got=%v ok=%v", name, parsed, ok)
		}
		if len(Patterns(slot)) == 0 {
			t.Fatalf("slot should have patterns: %s", name)
		}
	}

	if BoneSlot(-1).IsValid() || BoneSlot(SlotCount).IsValid() {
		t.Fatalf("out of range slot should be invalid")
	}
	if _, ok := ParseBoneSlot("Tail"); ok {
		t.Fatalf("unknown slot name should not parse")
	}
	if slot, ok := ParseBoneSlot(" upperchest "); !ok || slot != UpperChest {
		t.Fatalf("parse should ignore case and spaces: got=%v ok=%v", slot, ok)
	}
}

func TestEveryPatternResolvesToItsSlot(t *testing.T) {
	index := DefaultPatternIndex()
	for _, slot := range BoneSlots() {
		for _, name := range Patterns(slot) {
			key := NormalizeBoneName(name)
			candidates := index.AllSlotsFor(key)
			if !containsSlot(candidates, slot) {
				t.Fatalf("pattern should be registered: name=%q slot=%s candidates=%v", name, slot, candidates)
			}
			if !index.Contains(key) {
				t.Fatalf("key should be recognized: %q", key)
			}
			best, ok := index.BestSlotFor(key)
			if !ok {
				t.Fatalf("best slot should exist: %q", key)
			}
			// 同じキーを共有するパターンは先に登録された枠が最有力になる。
			if len(candidates) == 1 && best != slot {
				t.Fatalf("best slot mismatch: name=%q got=%s want=%s", name, best, slot)
			}
			if best != candidates[0] {
				t.Fatalf("best slot should be first candidate: name=%q got=%s want=%s", name, best, candidates[0])
			}
		}
	}
}

func TestSharedKeysListSlotsInTableOrder(t *testing.T) {
	index := DefaultPatternIndex()
	cases := []struct {
		key  string
		want []BoneSlot
	}{
		{key: "legl", want: []BoneSlot{LeftUpperLeg, LeftLowerLeg}},
		{key: "footl", want: []BoneSlot{LeftFoot, LeftToes}},
		{key: "spine", want: []BoneSlot{Spine, Chest, UpperChest}},
		{key: "thumbr", want: []BoneSlot{RightThumbProximal, RightThumbIntermediate, RightThumbDistal}},
	}
	for _, tc := range cases {
		got := index.AllSlotsFor(tc.key)
		if len(got) != len(tc.want) {
			t.Fatalf("candidate count mismatch: key=%s got=%v want=%v", tc.key, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("candidate order mismatch: key=%s got=%v want=%v", tc.key, got, tc.want)
			}
		}
	}

	fingers := index.AllSlotsFor("fingerl")
	if len(fingers) != 15 || fingers[0] != LeftThumbProximal || fingers[14] != LeftLittleDistal {
		t.Fatalf("finger candidates mismatch: got=%v", fingers)
	}
}

func TestMatchBoneNameResolvesRigConventions(t *testing.T) {
	index := DefaultPatternIndex()
	cases := []struct {
		name string
		want BoneSlot
	}{
		{name: "J_Bip_L_UpperArm", want: LeftUpperArm},
		{name: "LeftUpperArm", want: LeftUpperArm},
		{name: "Bone_Hips", want: Hips},
		{name: "f_index.02.R", want: RightIndexProximal},
		{name: "右つま先", want: RightToes},
		{name: "Upper Chest", want: UpperChest},
		{name: "Left knee", want: LeftLowerLeg},
	}
	for _, tc := range cases {
		got, ok := index.MatchBoneName(tc.name)
		if !ok || got != tc.want {
			t.Fatalf("match mismatch: name=%s got=%s ok=%v want=%s", tc.name, got, ok, tc.want)
		}
	}

	// 関節番号は正規化で消えるため、先に登録された枠が採用される。
	if !slices.Contains(index.PossibleBones("f_index.02.R"), RightIndexIntermediate) {
		t.Fatalf("intermediate should remain a candidate: got=%v", index.PossibleBones("f_index.02.R"))
	}

	// 全角英字は畳み込まない。
	if _, ok := index.MatchBoneName("Ｈｉｐｓ"); ok {
		t.Fatalf("full-width name should not match")
	}

	// プレフィックス付きの名前は辞書だけでは解決しない。
	if _, ok := index.MatchBoneName("mixamorig_Hips"); ok {
		t.Fatalf("prefixed name should not match without stripping")
	}
	if _, ok := index.MatchBoneName(""); ok {
		t.Fatalf("empty name should not match")
	}
	if index.IsRecognizedBoneName("Skirt_01") {
		t.Fatalf("skirt should not be recognized")
	}
	if len(index.PossibleBones("")) != 0 {
		t.Fatalf("empty name should not have candidates")
	}
}

func TestKeysForListsNormalizedVariants(t *testing.T) {
	index := DefaultPatternIndex()
	keys := index.KeysFor(Hips)
	want := []string{"hips", "hip", "pelvis", "jbipchips"}
	if len(keys) != len(want) {
		t.Fatalf("keys mismatch: got=%v want=%v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys mismatch: got=%v want=%v", keys, want)
		}
	}
	if index.KeysFor(BoneSlot(99)) != nil {
		t.Fatalf("invalid slot should not have keys")
	}
}

func TestDefaultPatternIndexIsShared(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*PatternIndex, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = DefaultPatternIndex()
			_, _ = results[i].BestSlotFor("hips")
		}(i)
	}
	wg.Wait()
	for _, index := range results {
		if index != results[0] {
			t.Fatalf("default index should be built once")
		}
	}
}

func TestAllSlotsForReturnsCopy(t *testing.T) {
	index := DefaultPatternIndex()
	slots := index.AllSlotsFor("spine")
	slots[0] = Head
	if best, _ := index.BestSlotFor("spine"); best != Spine {
		t.Fatalf("index should not be mutated through returned slice: got=%s", best)
	}
}
