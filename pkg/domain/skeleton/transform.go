// 指示: miu200521358
package skeleton

import "github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/mmath"

// WorldPosition はワールド位置を返す。
func (n *Node) WorldPosition() mmath.Vec3 {
	if n == nil {
		return mmath.Vec3Zero()
	}
	if n.parent == nil {
		return n.Position
	}
	parent := n.parent
	scaled := parent.LossyScale().Muled(n.Position)
	return parent.WorldPosition().Added(parent.WorldRotation().Rotate(scaled))
}

// WorldRotation はワールド回転を返す。
func (n *Node) WorldRotation() mmath.Quaternion {
	if n == nil {
		return mmath.QuaternionIdentity()
	}
	if n.parent == nil {
		return n.Rotation
	}
	return n.parent.WorldRotation().Muled(n.Rotation)
}

// LossyScale は親のスケールを累積したスケールを返す。回転によるせん断は無視する。
func (n *Node) LossyScale() mmath.Vec3 {
	if n == nil {
		return mmath.Vec3One()
	}
	if n.parent == nil {
		return n.Scale
	}
	return n.parent.LossyScale().Muled(n.Scale)
}

// SetWorldPosition はワールド位置が指定値になるようローカル位置を設定する。
func (n *Node) SetWorldPosition(position mmath.Vec3) {
	if n.parent == nil {
		n.Position = position
		return
	}
	parent := n.parent
	local := parent.WorldRotation().Inverted().Rotate(position.Subed(parent.WorldPosition()))
	n.Position = local.Dived(parent.LossyScale())
}

// SetWorldRotation はワールド回転が指定値になるようローカル回転を設定する。
func (n *Node) SetWorldRotation(rotation mmath.Quaternion) {
	if n.parent == nil {
		n.Rotation = rotation
		return
	}
	n.Rotation = n.parent.WorldRotation().Inverted().Muled(rotation).Normalized()
}
