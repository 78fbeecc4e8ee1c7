// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/port/moutput"
	"go.uber.org/zap"
)

const logAligned = "アバターボーンへ位置合わせしました"

// AlignWithAvatar は衣装ボーンのワールド位置と回転を対応するアバターボーンへ合わせる。
func (uc *BoneSetupUsecase) AlignWithAvatar(
	target *skeleton.Node,
	outfit *skeleton.Node,
	avatar moutput.IHumanoidAvatar,
) (*AlignResult, error) {
	if target == nil || outfit == nil {
		return nil, fmt.Errorf("対象ノードまたは衣装が未設定です")
	}
	if !IsHumanoidAvatar(avatar) {
		return nil, ErrNotHumanoid
	}
	if !target.IsDescendantOf(outfit) {
		return nil, fmt.Errorf("%s: %w", target.Name(), ErrTargetNotInOutfit)
	}

	var found *BoneMatch
	matches := GetDetailedMatches(outfit, avatar)
	for i := range matches {
		if matches[i].OutfitBone == target {
			found = &matches[i]
			break
		}
	}
	if found == nil || found.AvatarBone == nil {
		return nil, fmt.Errorf("%s: %w", target.Name(), ErrNoAvatarBoneForTarget)
	}

	target.SetWorldPosition(found.AvatarBone.WorldPosition())
	target.SetWorldRotation(found.AvatarBone.WorldRotation())
	uc.logger.Info(logAligned, zap.String("target", target.Name()), zap.String("avatar_bone", found.AvatarBone.Name()))
	return &AlignResult{Target: target, AvatarBone: found.AvatarBone, Slot: found.Slot}, nil
}
