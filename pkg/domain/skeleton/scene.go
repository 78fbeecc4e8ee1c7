// 指示: miu200521358
package skeleton

// Scene はアバターと衣装を含む編集対象を表す。
type Scene struct {
	Avatar *Avatar
	Outfit *Node
	// ScaleAdjusterAvailable は外部スケール調整コンポーネントを利用できるかを表す。
	ScaleAdjusterAvailable bool
}
