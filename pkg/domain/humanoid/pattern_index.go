// 指示: miu200521358
package humanoid

import "sync"

// PatternIndex は正規化済みボーン名とボーン枠の対応辞書を表す。
// 構築後は読み取り専用で、並行参照してよい。
type PatternIndex struct {
	nameToSlots map[string][]BoneSlot
	slotToNames [SlotCount][]string
	allNames    map[string]struct{}
}

// defaultPatternIndex は組み込みパターン辞書から一度だけ構築する。
var defaultPatternIndex = sync.OnceValue(func() *PatternIndex {
	return NewPatternIndex(boneNamePatterns)
})

// DefaultPatternIndex は組み込みパターン辞書の索引を返す。
func DefaultPatternIndex() *PatternIndex {
	return defaultPatternIndex()
}

// NewPatternIndex はボーン枠ごとの名前バリエーションから索引を構築する。
func NewPatternIndex(patterns [SlotCount][]string) *PatternIndex {
	index := &PatternIndex{
		nameToSlots: make(map[string][]BoneSlot, SlotCount*8),
		allNames:    make(map[string]struct{}, SlotCount*8),
	}

	for i, names := range patterns {
		slot := BoneSlot(i)
		for _, name := range names {
			key := NormalizeBoneName(name)
			if key == "" {
				continue
			}
			if !containsSlot(index.nameToSlots[key], slot) {
				index.nameToSlots[key] = append(index.nameToSlots[key], slot)
			}
			if !containsString(index.slotToNames[slot], key) {
				index.slotToNames[slot] = append(index.slotToNames[slot], key)
			}
			index.allNames[key] = struct{}{}
		}
	}
	return index
}

// BestSlotFor は正規化キーに最初に登録されたボーン枠を返す。
func (idx *PatternIndex) BestSlotFor(key string) (BoneSlot, bool) {
	slots := idx.nameToSlots[key]
	if len(slots) == 0 {
		return 0, false
	}
	return slots[0], true
}

// AllSlotsFor は正規化キーに登録された全ボーン枠を登録順で返す。
func (idx *PatternIndex) AllSlotsFor(key string) []BoneSlot {
	slots := idx.nameToSlots[key]
	if len(slots) == 0 {
		return nil
	}
	return append([]BoneSlot(nil), slots...)
}

// KeysFor はボーン枠に登録された正規化キーを返す。
func (idx *PatternIndex) KeysFor(slot BoneSlot) []string {
	if !slot.IsValid() {
		return nil
	}
	return append([]string(nil), idx.slotToNames[slot]...)
}

// Contains は正規化キーが辞書に存在するかを判定する。
func (idx *PatternIndex) Contains(key string) bool {
	_, ok := idx.allNames[key]
	return ok
}

// KeyCount は登録済み正規化キーの件数を返す。
func (idx *PatternIndex) KeyCount() int {
	return len(idx.allNames)
}

// MatchBoneName は生のボーン名を正規化し、最有力のボーン枠を返す。
func (idx *PatternIndex) MatchBoneName(name string) (BoneSlot, bool) {
	if name == "" {
		return 0, false
	}
	return idx.BestSlotFor(NormalizeBoneName(name))
}

// PossibleBones は生のボーン名に該当しうる全ボーン枠を返す。
func (idx *PatternIndex) PossibleBones(name string) []BoneSlot {
	if name == "" {
		return nil
	}
	return idx.AllSlotsFor(NormalizeBoneName(name))
}

// IsRecognizedBoneName は生のボーン名が辞書で認識できるかを判定する。
func (idx *PatternIndex) IsRecognizedBoneName(name string) bool {
	if name == "" {
		return false
	}
	return idx.Contains(NormalizeBoneName(name))
}

// containsSlot はボーン枠の重複を判定する。
func containsSlot(slots []BoneSlot, slot BoneSlot) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// containsString は文字列の重複を判定する。
func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
