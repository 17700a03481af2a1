package camera

import (
	"image"
	"strconv"
)

// Status はカメラの接続状態を表す
type Status string

const (
	StatusConnected    Status = "connected"    // カメラは接続済み
	StatusDisconnected Status = "disconnected" // カメラは未接続
)

// Property はキャプチャデバイスの設定項目を表す
type Property int

const (
	// PropertyFocus はマニュアルフォーカス値 (0-255)
	PropertyFocus Property = iota
	// PropertyAutoFocus はオートフォーカスの有効/無効 (1/0)
	PropertyAutoFocus
)

// フレーム破棄ポリシー
const (
	// settleFrames はフォーカス変更後、安定するまでに破棄するフレーム数
	settleFrames = 30
	// warmupFrames は起動直後の安定化のために破棄するフレーム数
	warmupFrames = 5
)

// フォーカス値の有効範囲
const (
	focusMin = 0
	focusMax = 255
)

// Device はキャプチャデバイスへの低レベルアクセスを表すインターフェース
//
// 実装はフレームの取得とプロパティの設定/取得のみを担い、
// 排他制御は上位のInterfaceが行う
type Device interface {
	// IsOpened はデバイスが開かれているかを返す
	IsOpened() bool

	// Read は1フレームを読み取る
	Read() (image.Image, error)

	// Discard はnフレームを読み捨てる
	Discard(n int)

	// Set はデバイスのプロパティを設定する
	Set(p Property, value float64)

	// Get はデバイスのプロパティを取得する
	Get(p Property) float64

	// Close はデバイスを解放する
	Close() error
}

// OpenFunc はキャプチャデバイスを開く関数
type OpenFunc func() (Device, error)

// Address はカメラアドレスを表す
// 数値（デバイス番号）またはデバイスパスのどちらかを保持する
type Address struct {
	raw     string
	index   int
	numeric bool
}

// ParseAddress はカメラアドレス文字列を解析する
// 整数に変換できる場合はデバイス番号、できない場合はデバイスパスとして扱う
func ParseAddress(s string) Address {
	if index, err := strconv.Atoi(s); err == nil {
		return Address{raw: s, index: index, numeric: true}
	}
	return Address{raw: s}
}

// Value はgocvに渡すためのアドレス値を返す
// デバイス番号の場合はint、デバイスパスの場合はstringを返す
func (a Address) Value() interface{} {
	if a.numeric {
		return a.index
	}
	return a.raw
}

// String はアドレスの文字列表現を返す
func (a Address) String() string {
	return a.raw
}
