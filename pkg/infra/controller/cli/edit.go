// 指示: miu200521358
package cli

import (
	"errors"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/adapter/mpresenter"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/minteractor"
	"github.com/spf13/cobra"
)

// transformFlags はノード変換の編集指定を保持する。
type transformFlags struct {
	position string
	rotation string
	scale    string
}

// bind は変換指定のフラグを登録する。
func (f *transformFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.position, "position", "", messages.FlagPosition)
	cmd.Flags().StringVar(&f.rotation, "rotation", "", messages.FlagRotation)
	cmd.Flags().StringVar(&f.scale, "scale", "", messages.FlagScale)
}

// isEmpty は変換指定が無いかを判定する。
func (f *transformFlags) isEmpty() bool {
	return f.position == "" && f.rotation == "" && f.scale == ""
}

// apply は指定された変換をノードへ設定する。
func (f *transformFlags) apply(node *skeleton.Node) error {
	if f.position != "" {
		values, err := parseFloats(f.position, 3)
		if err != nil {
			return err
		}
		node.Position = mmath.NewVec3(values[0], values[1], values[2])
	}
	if f.rotation != "" {
		values, err := parseFloats(f.rotation, 4)
		if err != nil {
			return err
		}
		node.Rotation = mmath.NewQuaternion(values[0], values[1], values[2], values[3]).Normalized()
	}
	if f.scale != "" {
		values, err := parseFloats(f.scale, 3)
		if err != nil {
			return err
		}
		node.Scale = mmath.NewVec3(values[0], values[1], values[2])
	}
	return nil
}

// newAlignCommand はアバター位置合わせコマンドを生成する。
func newAlignCommand(opts *rootOptions) *cobra.Command {
	output := &outputFlags{}
	target := &targetFlags{}
	cmd := &cobra.Command{
		Use:   "align SCENE",
		Short: messages.CommandAlignShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withEnvironment(func(env *environment) error {
				scene, err := env.usecase.LoadScene(env.scenes, args[0])
				if err != nil {
					return err
				}
				if err := requireAvatarAndOutfit(scene); err != nil {
					return err
				}
				node, err := findTarget(scene.Outfit, target.path)
				if err != nil {
					return err
				}
				result, err := env.usecase.AlignWithAvatar(node, scene.Outfit, scene.Avatar)
				if err != nil {
					return err
				}
				mpresenter.Success(opts.out, opts.noColor, messages.MessageAligned,
					result.Target.Name(), result.AvatarBone.Name(), result.Slot.String())
				return opts.saveScene(env, args[0], scene, output)
			})
		},
	}
	output.bind(cmd)
	cmd.Flags().StringVarP(&target.path, "target", "t", "", messages.FlagTarget)
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

// newUniformScaleCommand は均一スケールコマンドを生成する。
func newUniformScaleCommand(opts *rootOptions) *cobra.Command {
	output := &outputFlags{}
	target := &targetFlags{}
	transform := &transformFlags{}
	cmd := &cobra.Command{
		Use:   "uniform-scale SCENE",
		Short: messages.CommandUniformScaleShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if transform.scale == "" {
				return errors.New(messages.MessageScaleRequired)
			}
			return opts.editTransform(args[0], target, transform, output, true, false)
		},
	}
	output.bind(cmd)
	target.bind(cmd)
	cmd.Flags().StringVar(&transform.scale, "scale", "", messages.FlagScale)
	return cmd
}

// newMirrorSyncCommand は左右同期コマンドを生成する。
func newMirrorSyncCommand(opts *rootOptions) *cobra.Command {
	output := &outputFlags{}
	target := &targetFlags{}
	transform := &transformFlags{}
	cmd := &cobra.Command{
		Use:   "mirror-sync SCENE",
		Short: messages.CommandMirrorSyncShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if transform.isEmpty() {
				return errors.New(messages.MessageTransformRequired)
			}
			return opts.editTransform(args[0], target, transform, output, false, true)
		},
	}
	output.bind(cmd)
	target.bind(cmd)
	transform.bind(cmd)
	return cmd
}

// editTransform は対象ノードを編集し、均一スケールと左右同期を設定値に従って反映する。
// forceUniform / forceMirror は設定値に関わらず該当機能を有効にする。
func (o *rootOptions) editTransform(
	scenePath string,
	target *targetFlags,
	transform *transformFlags,
	output *outputFlags,
	forceUniform bool,
	forceMirror bool,
) error {
	return o.withEnvironment(func(env *environment) error {
		scene, err := env.usecase.LoadScene(env.scenes, scenePath)
		if err != nil {
			return err
		}
		node, err := target.resolve(scene)
		if err != nil {
			return err
		}

		uniform := env.usecase.NewUniformScale(minteractor.ScaleAdjustersFor(scene))
		mirror := env.usecase.NewMirrorSync()
		if forceUniform {
			uniform.SetEnabled(true)
		}
		if forceMirror {
			mirror.SetEnabled(true)
		}
		uniform.Select(node)
		mirror.Select(node)

		if err := transform.apply(node); err != nil {
			return err
		}
		if scale, ok := uniform.Update(); ok {
			mpresenter.Success(o.out, o.noColor, messages.MessageUniformScaled, node.Name(), scale.String())
		} else if forceUniform {
			mpresenter.Warning(o.out, o.noColor, messages.MessageUniformUnchanged, node.Name())
		}
		if change, ok := mirror.Update(); ok {
			mpresenter.Success(o.out, o.noColor, messages.MessageMirrorSynced, node.Name(), change.Mirror.Name())
		} else if forceMirror {
			if _, paired := mirror.Cache().Mirror(node); !paired {
				mpresenter.Warning(o.out, o.noColor, messages.MessageMirrorNotFound, node.Name())
			} else {
				mpresenter.Warning(o.out, o.noColor, messages.MessageMirrorUnchanged, node.Name())
			}
		}
		return o.saveScene(env, scenePath, scene, output)
	})
}
