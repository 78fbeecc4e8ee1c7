// 指示: miu200521358
package cli

import (
	"strings"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/adapter/mpresenter"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/humanoid"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/minteractor"
	"github.com/spf13/cobra"
)

// newNormalizeCommand はボーン名正規化コマンドを生成する。
func newNormalizeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize NAME...",
		Short: messages.CommandNormalizeShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := mpresenter.NewTable(opts.out, opts.noColor, messages.HeaderName, messages.HeaderKey)
			for _, name := range args {
				table.AddRow(name, orNone(humanoid.NormalizeBoneName(name)))
			}
			table.Render()
			return nil
		},
	}
}

// newSlotCommand はボーン枠判定コマンドを生成する。
func newSlotCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "slot NAME...",
		Short: messages.CommandSlotShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index := humanoid.DefaultPatternIndex()
			table := mpresenter.NewTable(opts.out, opts.noColor,
				messages.HeaderName, messages.HeaderKey, messages.HeaderSlot, messages.HeaderCandidates)
			for _, name := range args {
				key := humanoid.NormalizeBoneName(name)
				best := messages.MessageNoSlot
				if slot, ok := index.BestSlotFor(key); ok {
					best = slot.String()
				}
				table.AddRow(name, orNone(key), best, joinSlots(index.AllSlotsFor(key)))
			}
			table.Render()
			return nil
		},
	}
}

// newMirrorCommand は左右反転名コマンドを生成する。
func newMirrorCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mirror NAME...",
		Short: messages.CommandMirrorShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := mpresenter.NewTable(opts.out, opts.noColor, messages.HeaderName, messages.HeaderMirror)
			for _, name := range args {
				mirrored, ok := minteractor.MirrorName(name)
				if !ok {
					mirrored = messages.MessageNoMirror
				}
				table.AddRow(name, mirrored)
			}
			table.Render()
			return nil
		},
	}
}

// joinSlots はボーン枠名を "," 区切りで連結する。
func joinSlots(slots []humanoid.BoneSlot) string {
	if len(slots) == 0 {
		return messages.MessageNone
	}
	names := make([]string, 0, len(slots))
	for _, slot := range slots {
		names = append(names, slot.String())
	}
	return strings.Join(names, ",")
}

// orNone は空文字を "-" に置き換える。
func orNone(text string) string {
	if text == "" {
		return messages.MessageNone
	}
	return text
}
