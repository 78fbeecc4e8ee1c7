// 指示: miu200521358
package humanoid

import "testing"

func TestNormalizeBoneName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{name: "", want: ""},
		{name: "Hips", want: "hips"},
		{name: "Bone_Hips", want: "hips"},
		{name: "bone_Left_Knee", want: "leftknee"},
		{name: "J_Bip_L_UpperArm", want: "jbiplupperarm"},
		{name: "Foot.L.001", want: "footl"},
		{name: "Thumb Proximal.L", want: "thumbproximall"},
		{name: "spine01", want: "spine"},
		{name: "左太腿", want: "左太腿"},
		{name: "Ｈｉｐｓ", want: "ｈｉｐｓ"},
		{name: "Left　Leg２", want: "left　leg２"},
		{name: "Spine２", want: "spine２"},
		{name: "ﾋﾀﾞﾘ", want: "ﾋﾀﾞﾘ"},
		{name: "123_. ", want: ""},
	}

	for _, tc := range cases {
		if got := NormalizeBoneName(tc.name); got != tc.want {
			t.Fatalf("normalize mismatch: name=%q got=%q want=%q", tc.name, got, tc.want)
		}
	}
}

func TestNormalizeBoneNameIsIdempotent(t *testing.T) {
	for _, slot := range BoneSlots() {
		for _, name := range Patterns(slot) {
			once := NormalizeBoneName(name)
			twice := NormalizeBoneName(once)
			if once != twice {
				t.Fatalf("normalize should be idempotent: name=%q once=%q twice=%q", name, once, twice)
			}
		}
	}
	for _, name := range []string{"bone_bone_Hips", "Bone_", "__bone_x", "ＢＯＮＥ_Chest"} {
		once := NormalizeBoneName(name)
		if twice := NormalizeBoneName(once); once != twice {
			t.Fatalf("normalize should be idempotent: name=%q once=%q twice=%q", name, once, twice)
		}
	}
}

func TestNormalizeBoneNameIgnoresCaseAndSeparators(t *testing.T) {
	want := NormalizeBoneName("leftknee")
	for _, name := range []string{"Left_Knee", "LEFTKNEE", "Left Knee", "left.knee", "Left_Knee_01"} {
		if got := NormalizeBoneName(name); got != want {
			t.Fatalf("normalize mismatch: name=%q got=%q want=%q", name, got, want)
		}
	}
}
