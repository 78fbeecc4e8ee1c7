// 指示: miu200521358
package mmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// approximateEpsilon は近似比較の最小許容差。
	approximateEpsilon = 1e-6
)

// Vec3 は3次元ベクトルを表す。
type Vec3 struct {
	r3.Vec
}

// NewVec3 は成分からベクトルを生成する。
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{Vec: r3.Vec{X: x, Y: y, Z: z}}
}

// Vec3Zero はゼロベクトルを返す。
func Vec3Zero() Vec3 {
	return Vec3{}
}

// Vec3One は全成分が1のベクトルを返す。
func Vec3One() Vec3 {
	return NewVec3(1, 1, 1)
}

// Vec3Uniform は全成分が同じ値のベクトルを返す。
func Vec3Uniform(v float64) Vec3 {
	return NewVec3(v, v, v)
}

// Added はベクトル和を返す。
func (v Vec3) Added(other Vec3) Vec3 {
	return Vec3{Vec: r3.Add(v.Vec, other.Vec)}
}

// Subed はベクトル差を返す。
func (v Vec3) Subed(other Vec3) Vec3 {
	return Vec3{Vec: r3.Sub(v.Vec, other.Vec)}
}

// MulScalar はスカラー倍を返す。
func (v Vec3) MulScalar(f float64) Vec3 {
	return Vec3{Vec: r3.Scale(f, v.Vec)}
}

// Muled は成分ごとの積を返す。
func (v Vec3) Muled(other Vec3) Vec3 {
	return NewVec3(v.X*other.X, v.Y*other.Y, v.Z*other.Z)
}

// Dived は成分ごとの商を返す。0成分は0として扱う。
func (v Vec3) Dived(other Vec3) Vec3 {
	return NewVec3(safeDiv(v.X, other.X), safeDiv(v.Y, other.Y), safeDiv(v.Z, other.Z))
}

// Distance は2点間距離を返す。
func (v Vec3) Distance(other Vec3) float64 {
	return r3.Norm(r3.Sub(v.Vec, other.Vec))
}

// Equals は完全一致を判定する。
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// NearEquals は許容差内の一致を判定する。
func (v Vec3) NearEquals(other Vec3, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon &&
		math.Abs(v.Y-other.Y) <= epsilon &&
		math.Abs(v.Z-other.Z) <= epsilon
}

// IsOne は全成分が1かを判定する。
func (v Vec3) IsOne() bool {
	return v.Equals(Vec3One())
}

// IsUniform は全成分が同じ値かを判定する。
func (v Vec3) IsUniform() bool {
	return v.X == v.Y && v.Y == v.Z
}

// MirroredX はX成分を反転したベクトルを返す。
func (v Vec3) MirroredX() Vec3 {
	return NewVec3(-v.X, v.Y, v.Z)
}

// Array は [x, y, z] を返す。
func (v Vec3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// String はベクトルの文字列表現を返す。
func (v Vec3) String() string {
	return fmt.Sprintf("[x=%.5f, y=%.5f, z=%.5f]", v.X, v.Y, v.Z)
}

// Approximately は相対誤差を考慮した近似一致を判定する。
func Approximately(a, b float64) bool {
	tolerance := math.Max(approximateEpsilon*math.Max(math.Abs(a), math.Abs(b)), approximateEpsilon*8)
	return math.Abs(b-a) < tolerance
}

// safeDiv は0除算を0として扱う除算を行う。
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
