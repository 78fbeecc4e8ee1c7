// 指示: miu200521358
package mmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Quaternion は回転を表す単位クォータニオン。
type Quaternion struct {
	quat.Number
}

// NewQuaternion は x, y, z, w 成分からクォータニオンを生成する。
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{Number: quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}}
}

// QuaternionIdentity は単位回転を返す。
func QuaternionIdentity() Quaternion {
	return NewQuaternion(0, 0, 0, 1)
}

// NewQuaternionFromAxisAngle は軸と角度(ラジアン)から回転を生成する。
func NewQuaternionFromAxisAngle(axis Vec3, angle float64) Quaternion {
	return Quaternion{Number: quat.Number(r3.NewRotation(angle, axis.Vec))}
}

// X は x 成分を返す。
func (q Quaternion) X() float64 { return q.Imag }

// Y は y 成分を返す。
func (q Quaternion) Y() float64 { return q.Jmag }

// Z は z 成分を返す。
func (q Quaternion) Z() float64 { return q.Kmag }

// W は w 成分を返す。
func (q Quaternion) W() float64 { return q.Real }

// Muled は q * other を返す。
func (q Quaternion) Muled(other Quaternion) Quaternion {
	return Quaternion{Number: quat.Mul(q.Number, other.Number)}
}

// Inverted は逆回転を返す。
func (q Quaternion) Inverted() Quaternion {
	if quat.Abs(q.Number) == 0 {
		return QuaternionIdentity()
	}
	return Quaternion{Number: quat.Inv(q.Number)}
}

// Normalized は正規化したクォータニオンを返す。
func (q Quaternion) Normalized() Quaternion {
	norm := quat.Abs(q.Number)
	if norm == 0 {
		return QuaternionIdentity()
	}
	return Quaternion{Number: quat.Scale(1/norm, q.Number)}
}

// Rotate はベクトルを回転する。
func (q Quaternion) Rotate(v Vec3) Vec3 {
	return Vec3{Vec: r3.Rotation(q.Normalized().Number).Rotate(v.Vec)}
}

// MirroredX はYZ平面で鏡映した回転 (x, -y, -z, w) を返す。
func (q Quaternion) MirroredX() Quaternion {
	return NewQuaternion(q.X(), -q.Y(), -q.Z(), q.W())
}

// Equals は完全一致を判定する。
func (q Quaternion) Equals(other Quaternion) bool {
	return q.Number == other.Number
}

// NearEquals は同じ回転かを許容差付きで判定する。q と -q は同じ回転として扱う。
func (q Quaternion) NearEquals(other Quaternion, epsilon float64) bool {
	dot := q.Real*other.Real + q.Imag*other.Imag + q.Jmag*other.Jmag + q.Kmag*other.Kmag
	return 1-math.Abs(dot) <= epsilon
}

// Array は [x, y, z, w] を返す。
func (q Quaternion) Array() [4]float64 {
	return [4]float64{q.X(), q.Y(), q.Z(), q.W()}
}

// String はクォータニオンの文字列表現を返す。
func (q Quaternion) String() string {
	return fmt.Sprintf("[x=%.5f, y=%.5f, z=%.5f, w=%.5f]", q.X(), q.Y(), q.Z(), q.W())
}
