// 指示: miu200521358
package skeleton

import "testing"

func TestFindRoot(t *testing.T) {
	scene := NewNode("Scene")
	avatar := scene.NewChild("Avatar")
	avatar.SkeletonDriver = true
	armature := avatar.NewChild("MyArmature")
	hips := armature.NewChild("Hips")
	leg := hips.NewChild("Leg_L")

	if got := FindRoot(leg); got != armature {
		t.Fatalf("root should be armature: got=%s", got.Name())
	}

	armature.SetName("Bones")
	if got := FindRoot(leg); got != avatar {
		t.Fatalf("root should be skeleton driver: got=%s", got.Name())
	}

	avatar.SkeletonDriver = false
	if got := FindRoot(leg); got != scene {
		t.Fatalf("root should fall back to top: got=%s", got.Name())
	}

	if FindRoot(nil) != nil {
		t.Fatalf("nil start should be nil")
	}

	lonely := NewNode("Armature")
	if got := FindRoot(lonely); got != lonely {
		t.Fatalf("single node should be its own root")
	}
}

func TestFindArmature(t *testing.T) {
	outfit := NewNode("Outfit")
	outfit.NewChild("Body")
	skeleton := outfit.NewChild("Skeleton")
	if got := FindArmature(outfit); got != skeleton {
		t.Fatalf("armature should be Skeleton child: got=%v", got.Name())
	}

	armature := outfit.NewChild("Armature")
	if got := FindArmature(outfit); got != armature {
		t.Fatalf("Armature should win over Skeleton: got=%v", got.Name())
	}
}

func TestFindArmatureBySkinnedRootBone(t *testing.T) {
	outfit := NewNode("Outfit")
	mesh := outfit.NewChild("Mesh")
	rig := outfit.NewChild("costume_rig")
	bones := rig.NewChild("Bones")
	hips := bones.NewChild("Hips")
	mesh.SkinnedRootBone = hips

	if got := FindArmature(outfit); got != bones {
		t.Fatalf("armature should be root bone parent: got=%v", got.Name())
	}

	rig.SetName("costume_skeleton")
	if got := FindArmature(outfit); got != rig {
		t.Fatalf("armature should be skeleton-named ancestor: got=%v", got.Name())
	}

	direct := NewNode("Direct")
	directHips := direct.NewChild("Hips")
	direct.SkinnedRootBone = directHips
	if got := FindArmature(direct); got != nil {
		t.Fatalf("root bone directly under outfit should not be armature: got=%v", got.Name())
	}
	if got := FindArmatureOrSelf(direct); got != direct {
		t.Fatalf("fallback should be outfit root")
	}
}

func TestHasArmatureLikeChild(t *testing.T) {
	outfit := NewNode("Outfit")
	if HasArmatureLikeChild(outfit) {
		t.Fatalf("empty outfit should not have armature")
	}
	outfit.NewChild("Body")
	outfit.NewChild("RootBone")
	if !HasArmatureLikeChild(outfit) {
		t.Fatalf("RootBone should look like armature")
	}
}
