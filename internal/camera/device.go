package camera

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// gocvDevice はgocv（OpenCV）によるDevice実装
type gocvDevice struct {
	capture *gocv.VideoCapture
}

// OpenDevice は指定されたアドレスのキャプチャデバイスを開く
func OpenDevice(addr Address) (Device, error) {
	capture, err := gocv.OpenVideoCapture(addr.Value())
	if err != nil {
		return nil, fmt.Errorf("カメラ %s を開けませんでした: %w", addr, err)
	}

	if !capture.IsOpened() {
		_ = capture.Close()
		return nil, fmt.Errorf("カメラ %s に接続できません", addr)
	}

	return &gocvDevice{capture: capture}, nil
}

// Opener は指定されたアドレスを開くOpenFuncを返す
func Opener(addr Address) OpenFunc {
	return func() (Device, error) {
		return OpenDevice(addr)
	}
}

// IsOpened はデバイスが開かれているかを返す
func (d *gocvDevice) IsOpened() bool {
	return d.capture.IsOpened()
}

// Read は1フレームを読み取ってimage.Imageとして返す
func (d *gocvDevice) Read() (image.Image, error) {
	mat := gocv.NewMat()
	defer func() {
		_ = mat.Close()
	}()

	if ok := d.capture.Read(&mat); !ok || mat.Empty() {
		return nil, fmt.Errorf("カメラからの読み取りに失敗")
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("フレームの変換に失敗: %w", err)
	}

	return img, nil
}

// Discard はnフレームを読み捨てる
// フォーカスの安定待ちに使うため、デコードを省いてグラブのみ行う
func (d *gocvDevice) Discard(n int) {
	if n > 0 {
		d.capture.Grab(n)
	}
}

// Set はデバイスのプロパティを設定する
func (d *gocvDevice) Set(p Property, value float64) {
	d.capture.Set(p.gocvProperty(), value)
}

// Get はデバイスのプロパティを取得する
func (d *gocvDevice) Get(p Property) float64 {
	return d.capture.Get(p.gocvProperty())
}

// Close はデバイスを解放する
func (d *gocvDevice) Close() error {
	return d.capture.Close()
}

// gocvProperty はPropertyをgocvの定数に変換する
func (p Property) gocvProperty() gocv.VideoCaptureProperties {
	switch p {
	case PropertyFocus:
		return gocv.VideoCaptureFocus
	case PropertyAutoFocus:
		return gocv.VideoCaptureAutoFocus
	default:
		panic(fmt.Sprintf("未知のプロパティ: %d", p))
	}
}
