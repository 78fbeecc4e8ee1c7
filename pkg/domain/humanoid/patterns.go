// 指示: miu200521358
package humanoid

// boneNamePatterns はボーン枠ごとの名前バリエーションを保持する。
// 各枠の先頭ほど優先度が高い。
var boneNamePatterns = [SlotCount][]string{
	Hips: {"Hips", "Hip", "pelvis", "Pelvis", "J_Bip_C_Hips"},
	LeftUpperLeg: {
		"LeftUpperLeg", "UpperLeg_Left", "UpperLeg_L", "Leg_Left", "Leg_L",
		"ULeg_L", "Left leg", "LeftUpLeg", "UpLeg.L", "Thigh_L", "Thigh.L",
		"J_Bip_L_UpperLeg", "左もも", "左太腿",
	},
	RightUpperLeg: {
		"RightUpperLeg", "UpperLeg_Right", "UpperLeg_R", "Leg_Right", "Leg_R",
		"ULeg_R", "Right leg", "RightUpLeg", "UpLeg.R", "Thigh_R", "Thigh.R",
		"J_Bip_R_UpperLeg", "右もも", "右太腿",
	},
	LeftLowerLeg: {
		"LeftLowerLeg", "LowerLeg_Left", "LowerLeg_L", "Knee_Left", "Knee_L",
		"LLeg_L", "Left knee", "LeftLeg", "leg_L", "shin.L", "Shin_L",
		"J_Bip_L_LowerLeg", "左すね", "左下腿",
	},
	RightLowerLeg: {
		"RightLowerLeg", "LowerLeg_Right", "LowerLeg_R", "Knee_Right", "Knee_R",
		"LLeg_R", "Right knee", "RightLeg", "leg_R", "shin.R", "Shin_R",
		"J_Bip_R_LowerLeg", "右すね", "右下腿",
	},
	LeftFoot: {
		"LeftFoot", "Foot_Left", "Foot_L", "Ankle_L", "Foot.L.001", "Left ankle",
		"heel.L", "J_Bip_L_Foot", "左足首", "左足",
	},
	RightFoot: {
		"RightFoot", "Foot_Right", "Foot_R", "Ankle_R", "Foot.R.001", "Right ankle",
		"heel.R", "J_Bip_R_Foot", "右足首", "右足",
	},
	Spine: {"Spine", "spine01", "Spine1", "J_Bip_C_Spine", "背骨"},
	Chest: {"Chest", "Bust", "spine02", "Spine2", "J_Bip_C_Chest", "胸"},
	Neck:  {"Neck", "J_Bip_C_Neck", "首"},
	Head:  {"Head", "J_Bip_C_Head", "頭"},
	LeftShoulder: {
		"LeftShoulder", "Shoulder_Left", "Shoulder_L", "L_Shoulder",
		"J_Bip_L_Shoulder", "左肩", "左鎖骨",
	},
	RightShoulder: {
		"RightShoulder", "Shoulder_Right", "Shoulder_R", "R_Shoulder",
		"J_Bip_R_Shoulder", "右肩", "右鎖骨",
	},
	LeftUpperArm: {
		"LeftUpperArm", "UpperArm_Left", "UpperArm_L", "Arm_Left", "Arm_L",
		"UArm_L", "Left arm", "UpperLeftArm", "J_Bip_L_UpperArm", "左上腕",
	},
	RightUpperArm: {
		"RightUpperArm", "UpperArm_Right", "UpperArm_R", "Arm_Right", "Arm_R",
		"UArm_R", "Right arm", "UpperRightArm", "J_Bip_R_UpperArm", "右上腕",
	},
	LeftLowerArm: {
		"LeftLowerArm", "LowerArm_Left", "LowerArm_L", "LArm_L", "Left elbow",
		"LeftForeArm", "Elbow_L", "forearm_L", "ForArm_L", "ForeArm.L",
		"J_Bip_L_LowerArm", "左前腕",
	},
	RightLowerArm: {
		"RightLowerArm", "LowerArm_Right", "LowerArm_R", "LArm_R", "Right elbow",
		"RightForeArm", "Elbow_R", "forearm_R", "ForArm_R", "ForeArm.R",
		"J_Bip_R_LowerArm", "右前腕",
	},
	LeftHand: {
		"LeftHand", "Hand_Left", "Hand_L", "Left wrist", "Wrist_L",
		"J_Bip_L_Hand", "左手",
	},
	RightHand: {
		"RightHand", "Hand_Right", "Hand_R", "Right wrist", "Wrist_R",
		"J_Bip_R_Hand", "右手",
	},
	LeftToes: {
		"LeftToes", "Toes_Left", "Toe_Left", "ToeIK_L", "Toes_L", "Toe_L",
		"Foot.L.002", "Left Toe", "LeftToeBase", "J_Bip_L_ToeBase", "左つま先",
	},
	RightToes: {
		"RightToes", "Toes_Right", "Toe_Right", "ToeIK_R", "Toes_R", "Toe_R",
		"Foot.R.002", "Right Toe", "RightToeBase", "J_Bip_R_ToeBase", "右つま先",
	},
	LeftEye:  {"LeftEye", "Eye_Left", "Eye_L", "J_Adj_L_FaceEye", "左目"},
	RightEye: {"RightEye", "Eye_Right", "Eye_R", "J_Adj_R_FaceEye", "右目"},
	Jaw:      {"Jaw", "J_Adj_C_FaceJaw", "顎"},

	LeftThumbProximal:     {"LeftThumbProximal", "ProximalThumb_Left", "ProximalThumb_L", "Thumb1_L", "ThumbFinger1_L", "LeftHandThumb1", "Thumb Proximal.L", "Thunb1_L", "finger01_01_L", "J_Bip_L_Thumb1"},
	LeftThumbIntermediate: {"LeftThumbIntermediate", "IntermediateThumb_Left", "IntermediateThumb_L", "Thumb2_L", "ThumbFinger2_L", "LeftHandThumb2", "Thumb Intermediate.L", "Thunb2_L", "finger01_02_L", "J_Bip_L_Thumb2"},
	LeftThumbDistal:       {"LeftThumbDistal", "DistalThumb_Left", "DistalThumb_L", "Thumb3_L", "ThumbFinger3_L", "LeftHandThumb3", "Thumb Distal.L", "Thunb3_L", "finger01_03_L", "J_Bip_L_Thumb3"},

	LeftIndexProximal:     {"LeftIndexProximal", "ProximalIndex_Left", "ProximalIndex_L", "Index1_L", "IndexFinger1_L", "LeftHandIndex1", "Index Proximal.L", "finger02_01_L", "f_index.01.L", "J_Bip_L_Index1"},
	LeftIndexIntermediate: {"LeftIndexIntermediate", "IntermediateIndex_Left", "IntermediateIndex_L", "Index2_L", "IndexFinger2_L", "LeftHandIndex2", "Index Intermediate.L", "finger02_02_L", "f_index.02.L", "J_Bip_L_Index2"},
	LeftIndexDistal:       {"LeftIndexDistal", "DistalIndex_Left", "DistalIndex_L", "Index3_L", "IndexFinger3_L", "LeftHandIndex3", "Index Distal.L", "finger02_03_L", "f_index.03.L", "J_Bip_L_Index3"},

	LeftMiddleProximal:     {"LeftMiddleProximal", "ProximalMiddle_Left", "ProximalMiddle_L", "Middle1_L", "MiddleFinger1_L", "LeftHandMiddle1", "Middle Proximal.L", "finger03_01_L", "f_middle.01.L", "J_Bip_L_Middle1"},
	LeftMiddleIntermediate: {"LeftMiddleIntermediate", "IntermediateMiddle_Left", "IntermediateMiddle_L", "Middle2_L", "MiddleFinger2_L", "LeftHandMiddle2", "Middle Intermediate.L", "finger03_02_L", "f_middle.02.L", "J_Bip_L_Middle2"},
	LeftMiddleDistal:       {"LeftMiddleDistal", "DistalMiddle_Left", "DistalMiddle_L", "Middle3_L", "MiddleFinger3_L", "LeftHandMiddle3", "Middle Distal.L", "finger03_03_L", "f_middle.03.L", "J_Bip_L_Middle3"},

	LeftRingProximal:     {"LeftRingProximal", "ProximalRing_Left", "ProximalRing_L", "Ring1_L", "RingFinger1_L", "LeftHandRing1", "Ring Proximal.L", "finger04_01_L", "f_ring.01.L", "J_Bip_L_Ring1"},
	LeftRingIntermediate: {"LeftRingIntermediate", "IntermediateRing_Left", "IntermediateRing_L", "Ring2_L", "RingFinger2_L", "LeftHandRing2", "Ring Intermediate.L", "finger04_02_L", "f_ring.02.L", "J_Bip_L_Ring2"},
	LeftRingDistal:       {"LeftRingDistal", "DistalRing_Left", "DistalRing_L", "Ring3_L", "RingFinger3_L", "LeftHandRing3", "Ring Distal.L", "finger04_03_L", "f_ring.03.L", "J_Bip_L_Ring3"},

	LeftLittleProximal:     {"LeftLittleProximal", "ProximalLittle_Left", "ProximalLittle_L", "Little1_L", "LittleFinger1_L", "LeftHandPinky1", "Little Proximal.L", "finger05_01_L", "f_pinky.01.L", "J_Bip_L_Little1"},
	LeftLittleIntermediate: {"LeftLittleIntermediate", "IntermediateLittle_Left", "IntermediateLittle_L", "Little2_L", "LittleFinger2_L", "LeftHandPinky2", "Little Intermediate.L", "finger05_02_L", "f_pinky.02.L", "J_Bip_L_Little2"},
	LeftLittleDistal:       {"LeftLittleDistal", "DistalLittle_Left", "DistalLittle_L", "Little3_L", "LittleFinger3_L", "LeftHandPinky3", "Little Distal.L", "finger05_03_L", "f_pinky.03.L", "J_Bip_L_Little3"},

	RightThumbProximal:     {"RightThumbProximal", "ProximalThumb_Right", "ProximalThumb_R", "Thumb1_R", "ThumbFinger1_R", "RightHandThumb1", "Thumb Proximal.R", "Thunb1_R", "finger01_01_R", "J_Bip_R_Thumb1"},
	RightThumbIntermediate: {"RightThumbIntermediate", "IntermediateThumb_Right", "IntermediateThumb_R", "Thumb2_R", "ThumbFinger2_R", "RightHandThumb2", "Thumb Intermediate.R", "Thunb2_R", "finger01_02_R", "J_Bip_R_Thumb2"},
	RightThumbDistal:       {"RightThumbDistal", "DistalThumb_Right", "DistalThumb_R", "Thumb3_R", "ThumbFinger3_R", "RightHandThumb3", "Thumb Distal.R", "Thunb3_R", "finger01_03_R", "J_Bip_R_Thumb3"},

	RightIndexProximal:     {"RightIndexProximal", "ProximalIndex_Right", "ProximalIndex_R", "Index1_R", "IndexFinger1_R", "RightHandIndex1", "Index Proximal.R", "finger02_01_R", "f_index.01.R", "J_Bip_R_Index1"},
	RightIndexIntermediate: {"RightIndexIntermediate", "IntermediateIndex_Right", "IntermediateIndex_R", "Index2_R", "IndexFinger2_R", "RightHandIndex2", "Index Intermediate.R", "finger02_02_R", "f_index.02.R", "J_Bip_R_Index2"},
	RightIndexDistal:       {"RightIndexDistal", "DistalIndex_Right", "DistalIndex_R", "Index3_R", "IndexFinger3_R", "RightHandIndex3", "Index Distal.R", "finger02_03_R", "f_index.03.R", "J_Bip_R_Index3"},

	RightMiddleProximal:     {"RightMiddleProximal", "ProximalMiddle_Right", "ProximalMiddle_R", "Middle1_R", "MiddleFinger1_R", "RightHandMiddle1", "Middle Proximal.R", "finger03_01_R", "f_middle.01.R", "J_Bip_R_Middle1"},
	RightMiddleIntermediate: {"RightMiddleIntermediate", "IntermediateMiddle_Right", "IntermediateMiddle_R", "Middle2_R", "MiddleFinger2_R", "RightHandMiddle2", "Middle Intermediate.R", "finger03_02_R", "f_middle.02.R", "J_Bip_R_Middle2"},
	RightMiddleDistal:       {"RightMiddleDistal", "DistalMiddle_Right", "DistalMiddle_R", "Middle3_R", "MiddleFinger3_R", "RightHandMiddle3", "Middle Distal.R", "finger03_03_R", "f_middle.03.R", "J_Bip_R_Middle3"},

	RightRingProximal:     {"RightRingProximal", "ProximalRing_Right", "ProximalRing_R", "Ring1_R", "RingFinger1_R", "RightHandRing1", "Ring Proximal.R", "finger04_01_R", "f_ring.01.R", "J_Bip_R_Ring1"},
	RightRingIntermediate: {"RightRingIntermediate", "IntermediateRing_Right", "IntermediateRing_R", "Ring2_R", "RingFinger2_R", "RightHandRing2", "Ring Intermediate.R", "finger04_02_R", "f_ring.02.R", "J_Bip_R_Ring2"},
	RightRingDistal:       {"RightRingDistal", "DistalRing_Right", "DistalRing_R", "Ring3_R", "RingFinger3_R", "RightHandRing3", "Ring Distal.R", "finger04_03_R", "f_ring.03.R", "J_Bip_R_Ring3"},

	RightLittleProximal:     {"RightLittleProximal", "ProximalLittle_Right", "ProximalLittle_R", "Little1_R", "LittleFinger1_R", "RightHandPinky1", "Little Proximal.R", "finger05_01_R", "f_pinky.01.R", "J_Bip_R_Little1"},
	RightLittleIntermediate: {"RightLittleIntermediate", "IntermediateLittle_Right", "IntermediateLittle_R", "Little2_R", "LittleFinger2_R", "RightHandPinky2", "Little Intermediate.R", "finger05_02_R", "f_pinky.02.R", "J_Bip_R_Little2"},
	RightLittleDistal:       {"RightLittleDistal", "DistalLittle_Right", "DistalLittle_R", "Little3_R", "LittleFinger3_R", "RightHandPinky3", "Little Distal.R", "finger05_03_R", "f_pinky.03.R", "J_Bip_R_Little3"},

	UpperChest: {"UpperChest", "UChest", "spine03", "Spine3", "J_Bip_C_UpperChest", "上胸"},
}

// Patterns はボーン枠に登録された名前バリエーションの複製を返す。
func Patterns(slot BoneSlot) []string {
	if !slot.IsValid() {
		return nil
	}
	return append([]string(nil), boneNamePatterns[slot]...)
}
