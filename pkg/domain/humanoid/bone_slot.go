// 指示: miu200521358
// Package humanoid はヒューマノイドボーン枠とボーン名パターン辞書を提供する。
package humanoid

import "strings"

// BoneSlot はヒューマノイドボーン枠を表す。並び順は HumanBodyBones と同じ。
type BoneSlot int

const (
	Hips BoneSlot = iota
	LeftUpperLeg
	RightUpperLeg
	LeftLowerLeg
	RightLowerLeg
	LeftFoot
	RightFoot
	Spine
	Chest
	Neck
	Head
	LeftShoulder
	RightShoulder
	LeftUpperArm
	RightUpperArm
	LeftLowerArm
	RightLowerArm
	LeftHand
	RightHand
	LeftToes
	RightToes
	LeftEye
	RightEye
	Jaw
	LeftThumbProximal
	LeftThumbIntermediate
	LeftThumbDistal
	LeftIndexProximal
	LeftIndexIntermediate
	LeftIndexDistal
	LeftMiddleProximal
	LeftMiddleIntermediate
	LeftMiddleDistal
	LeftRingProximal
	LeftRingIntermediate
	LeftRingDistal
	LeftLittleProximal
	LeftLittleIntermediate
	LeftLittleDistal
	RightThumbProximal
	RightThumbIntermediate
	RightThumbDistal
	RightIndexProximal
	RightIndexIntermediate
	RightIndexDistal
	RightMiddleProximal
	RightMiddleIntermediate
	RightMiddleDistal
	RightRingProximal
	RightRingIntermediate
	RightRingDistal
	RightLittleProximal
	RightLittleIntermediate
	RightLittleDistal
	UpperChest

	// SlotCount はボーン枠の総数。
	SlotCount int = iota
)

// boneSlotNames はボーン枠の英名を保持する。
var boneSlotNames = [SlotCount]string{
	"Hips",
	"LeftUpperLeg",
	"RightUpperLeg",
	"LeftLowerLeg",
	"RightLowerLeg",
	"LeftFoot",
	"RightFoot",
	"Spine",
	"Chest",
	"Neck",
	"Head",
	"LeftShoulder",
	"RightShoulder",
	"LeftUpperArm",
	"RightUpperArm",
	"LeftLowerArm",
	"RightLowerArm",
	"LeftHand",
	"RightHand",
	"LeftToes",
	"RightToes",
	"LeftEye",
	"RightEye",
	"Jaw",
	"LeftThumbProximal",
	"LeftThumbIntermediate",
	"LeftThumbDistal",
	"LeftIndexProximal",
	"LeftIndexIntermediate",
	"LeftIndexDistal",
	"LeftMiddleProximal",
	"LeftMiddleIntermediate",
	"LeftMiddleDistal",
	"LeftRingProximal",
	"LeftRingIntermediate",
	"LeftRingDistal",
	"LeftLittleProximal",
	"LeftLittleIntermediate",
	"LeftLittleDistal",
	"RightThumbProximal",
	"RightThumbIntermediate",
	"RightThumbDistal",
	"RightIndexProximal",
	"RightIndexIntermediate",
	"RightIndexDistal",
	"RightMiddleProximal",
	"RightMiddleIntermediate",
	"RightMiddleDistal",
	"RightRingProximal",
	"RightRingIntermediate",
	"RightRingDistal",
	"RightLittleProximal",
	"RightLittleIntermediate",
	"RightLittleDistal",
	"UpperChest",
}

// boneSlotByLowerName は小文字英名からボーン枠への辞書を保持する。
var boneSlotByLowerName = buildBoneSlotByLowerName()

// IsValid は定義済みのボーン枠かを判定する。
func (s BoneSlot) IsValid() bool {
	return s >= 0 && int(s) < SlotCount
}

// String はボーン枠の英名を返す。
func (s BoneSlot) String() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return boneSlotNames[s]
}

// BoneSlots は全ボーン枠を定義順で返す。
func BoneSlots() []BoneSlot {
	slots := make([]BoneSlot, SlotCount)
	for i := range slots {
		slots[i] = BoneSlot(i)
	}
	return slots
}

// ParseBoneSlot は英名(大文字小文字無視)からボーン枠を解決する。
func ParseBoneSlot(name string) (BoneSlot, bool) {
	slot, ok := boneSlotByLowerName[strings.ToLower(strings.TrimSpace(name))]
	return slot, ok
}

// buildBoneSlotByLowerName は小文字英名の逆引き辞書を構築する。
func buildBoneSlotByLowerName() map[string]BoneSlot {
	out := make(map[string]BoneSlot, SlotCount)
	for i, name := range boneSlotNames {
		out[strings.ToLower(name)] = BoneSlot(i)
	}
	return out
}
