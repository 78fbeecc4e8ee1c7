// 指示: miu200521358
package minteractor

import (
	"errors"
	"fmt"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/humanoid"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/model"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/port/moutput"
	"go.uber.org/zap"
)

const (
	logAvatarSetupDone   = "ヒューマノイドボーンを設定しました"
	logOutfitSetupDone   = "アバターを参照して衣装ボーンを設定しました"
	logOutfitNoMatch     = "マッチするボーンが見つかりません"
	logOutfitSkipped     = "アバターにマッチしなかったボーンがあります"
	logOutfitSkippedBone = "未マッチボーン"
	logRendererRemoved   = "ボーン表示を削除しました"
)

// CollectHumanoidBones はアバターのヒューマノイドボーンをボーン枠順に重複なく返す。
func CollectHumanoidBones(avatar moutput.IHumanoidAvatar) []*skeleton.Node {
	if !IsHumanoidAvatar(avatar) {
		return nil
	}
	bones := make([]*skeleton.Node, 0, humanoid.SlotCount)
	seen := make(map[*skeleton.Node]struct{}, humanoid.SlotCount)
	for _, slot := range humanoid.BoneSlots() {
		node := avatar.BoneTransform(slot)
		if node == nil {
			continue
		}
		if _, exists := seen[node]; exists {
			continue
		}
		seen[node] = struct{}{}
		bones = append(bones, node)
	}
	return bones
}

// AttachBoneRenderer は対象ノードのボーン表示を設定する。既存の設定は上書きする。
func AttachBoneRenderer(target *skeleton.Node, bones []*skeleton.Node, color mmath.Color) bool {
	if target == nil || len(bones) == 0 {
		return false
	}
	assigned := make([]*skeleton.Node, len(bones))
	copy(assigned, bones)
	if target.BoneRenderer == nil {
		target.BoneRenderer = &skeleton.BoneRenderer{}
	}
	target.BoneRenderer.Bones = assigned
	target.BoneRenderer.Color = color
	return true
}

// RemoveBoneRenderer は対象ノードのボーン表示を削除する。削除した場合 true を返す。
func RemoveBoneRenderer(target *skeleton.Node) bool {
	if !HasBoneRenderer(target) {
		return false
	}
	target.BoneRenderer = nil
	return true
}

// HasBoneRenderer は対象ノードがボーン表示を持つかを判定する。
func HasBoneRenderer(target *skeleton.Node) bool {
	return target != nil && target.BoneRenderer != nil
}

// SetupAvatar はアバタールートへヒューマノイドボーンのボーン表示を設定する。
func (uc *BoneSetupUsecase) SetupAvatar(avatar moutput.IHumanoidAvatar) (*AvatarSetupResult, error) {
	if !IsHumanoidAvatar(avatar) {
		return nil, ErrNotHumanoid
	}
	bones := CollectHumanoidBones(avatar)
	if len(bones) == 0 {
		return nil, fmt.Errorf("%s: %w", avatar.Root().Name(), ErrNoHumanoidBones)
	}
	target := avatar.Root()
	if !AttachBoneRenderer(target, bones, uc.settings.AvatarColor) {
		return nil, fmt.Errorf("ボーン表示の設定に失敗しました: %s", target.Name())
	}
	uc.logger.Info(logAvatarSetupDone, zap.String("avatar", target.Name()), zap.Int("bones", len(bones)))
	return &AvatarSetupResult{Target: target, Bones: bones}, nil
}

// SetupOutfit は衣装ルートへアバターに対応付いた衣装ボーンのボーン表示を設定する。
func (uc *BoneSetupUsecase) SetupOutfit(outfit *skeleton.Node, avatar moutput.IHumanoidAvatar) (*OutfitSetupResult, error) {
	if outfit == nil {
		return nil, fmt.Errorf("衣装が未設定です")
	}
	if !IsHumanoidAvatar(avatar) {
		return nil, ErrNotHumanoid
	}

	matches := GetDetailedMatches(outfit, avatar)
	result := &OutfitSetupResult{Target: outfit, Matches: matches}
	for _, match := range matches {
		if match.AvatarBone != nil {
			result.Bones = append(result.Bones, match.OutfitBone)
		} else {
			result.Skipped = append(result.Skipped, match)
		}
	}
	if len(result.Bones) == 0 {
		uc.logger.Warn(logOutfitNoMatch, zap.String("outfit", outfit.Name()),
			zap.String("warning", model.SetupWarningNoMatchedBones))
		return nil, fmt.Errorf("%s: %w", outfit.Name(), ErrNoMatchedBones)
	}

	AttachBoneRenderer(outfit, result.Bones, uc.settings.OutfitColor)
	uc.logger.Info(logOutfitSetupDone, zap.String("outfit", outfit.Name()),
		zap.String("avatar", avatar.Root().Name()), zap.Int("bones", len(result.Bones)))

	if len(result.Skipped) > 0 {
		result.WarningIDs = append(result.WarningIDs, model.SetupWarningUnmatchedBones)
		uc.logger.Warn(logOutfitSkipped, zap.String("outfit", outfit.Name()), zap.Int("count", len(result.Skipped)))
		for _, skipped := range result.Skipped {
			uc.logger.Warn(logOutfitSkippedBone, zap.String("bone", skipped.OutfitBone.Name()),
				zap.Stringer("slot", skipped.Slot))
		}
	}
	return result, nil
}

// SetupOutfits は複数の衣装へボーン表示を設定する。マッチ0件の衣装は警告IDを付けて結果に含め、処理は継続する。
func (uc *BoneSetupUsecase) SetupOutfits(outfits []*skeleton.Node, avatar moutput.IHumanoidAvatar) ([]OutfitSetupResult, error) {
	if !IsHumanoidAvatar(avatar) {
		return nil, ErrNotHumanoid
	}
	results := make([]OutfitSetupResult, 0, len(outfits))
	for _, outfit := range outfits {
		if outfit == nil {
			continue
		}
		result, err := uc.SetupOutfit(outfit, avatar)
		if err != nil {
			if !errors.Is(err, ErrNoMatchedBones) {
				return results, err
			}
			results = append(results, OutfitSetupResult{
				Target:     outfit,
				WarningIDs: []string{model.SetupWarningNoMatchedBones},
			})
			continue
		}
		results = append(results, *result)
	}
	return results, nil
}

// RemoveRenderer は対象ノードのボーン表示を削除し、ログを出力する。
func (uc *BoneSetupUsecase) RemoveRenderer(target *skeleton.Node) bool {
	if !RemoveBoneRenderer(target) {
		return false
	}
	uc.logger.Info(logRendererRemoved, zap.String("target", target.Name()))
	return true
}
