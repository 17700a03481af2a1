package camera

import (
	"bytes"
	"errors"
	"fmt"
	"image/jpeg"
	"os"
	"sync"
)

// ErrNotConnected はカメラ未接続時のエラー
var ErrNotConnected = errors.New("カメラが接続されていません")

// ErrFocusOutOfRange はフォーカス値が範囲外のときのエラー
var ErrFocusOutOfRange = errors.New("フォーカス値は0から255の範囲で指定してください")

// jpegQuality は撮影画像のJPEG品質
const jpegQuality = 95

// FocusSettings はフォーカス調整のパラメータ
// nilのフィールドは「変更しない」を意味する
type FocusSettings struct {
	Focus     *int  // マニュアルフォーカス値 (0-255)
	AutoFocus *bool // オートフォーカスの有効/無効
}

// Interface はキャプチャデバイスへのアクセスを直列化するカメララッパー
//
// 全てのデバイス操作は単一のミューテックスで保護される
// 撮影とフォーカス調整が同じデバイスハンドル上で並行に
// 実行されることはない
type Interface struct {
	open     OpenFunc
	imageDir string

	mu     sync.Mutex
	device Device
}

// NewInterface は新しいInterfaceを作成する
// imageDirは撮影画像の出力先ディレクトリ
func NewInterface(open OpenFunc, imageDir string) *Interface {
	return &Interface{
		open:     open,
		imageDir: imageDir,
	}
}

// Connect はカメラに接続する
// 既に接続済みの場合は一度解放してから開き直す
func (i *Interface) Connect() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.device != nil {
		_ = i.device.Close()
		i.device = nil
	}

	device, err := i.open()
	if err != nil {
		return fmt.Errorf("カメラへの接続に失敗: %w", err)
	}

	i.device = device
	return nil
}

// Disconnect はカメラから切断する
// 未接続の場合は何もしない
func (i *Interface) Disconnect() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.device == nil {
		return nil
	}

	err := i.device.Close()
	i.device = nil
	if err != nil {
		return fmt.Errorf("カメラの解放に失敗: %w", err)
	}

	return nil
}

// IsConnected はカメラが接続されているかを返す
func (i *Interface) IsConnected() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.device != nil && i.device.IsOpened()
}

// Status は現在の接続状態を返す
func (i *Interface) Status() Status {
	if i.IsConnected() {
		return StatusConnected
	}
	return StatusDisconnected
}

// TakePicture は1枚撮影してJPEGファイルとして保存し、そのパスを返す
//
// フォーカスパラメータが指定された場合は読み取り前にフォーカスを調整する
// 指定がない場合も起動直後の安定化のためにフレームを読み捨てる
func (i *Interface) TakePicture(settings FocusSettings) (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.device == nil || !i.device.IsOpened() {
		return "", ErrNotConnected
	}

	if err := i.adjustFocusLocked(settings); err != nil {
		return "", err
	}

	img, err := i.device.Read()
	if err != nil {
		return "", fmt.Errorf("撮影に失敗: %w", err)
	}

	file, err := os.CreateTemp(i.imageDir, "capture_*.jpg")
	if err != nil {
		return "", fmt.Errorf("画像ファイルの作成に失敗: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := jpeg.Encode(file, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("JPEGの書き込みに失敗: %w", err)
	}

	return file.Name(), nil
}

// ReadFrame は1フレームを読み取ってJPEGバイト列として返す
// スナップショットとMJPEGストリーミング用で、フレームの読み捨ては行わない
func (i *Interface) ReadFrame() ([]byte, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.device == nil || !i.device.IsOpened() {
		return nil, ErrNotConnected
	}

	img, err := i.device.Read()
	if err != nil {
		return nil, fmt.Errorf("フレームの読み取りに失敗: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("JPEGのエンコードに失敗: %w", err)
	}

	return buf.Bytes(), nil
}

// AdjustFocus はカメラのフォーカス設定を調整する
func (i *Interface) AdjustFocus(settings FocusSettings) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.device == nil || !i.device.IsOpened() {
		return ErrNotConnected
	}

	return i.adjustFocusLocked(settings)
}

// adjustFocusLocked はロック取得済みを前提にフォーカスを調整する
//
// 指定された値が現在のデバイス値と異なる場合のみ適用し、
// 変更があれば安定のためsettleFramesフレームを読み捨てる
// 変更がなければwarmupFramesフレームの読み捨てに留める
func (i *Interface) adjustFocusLocked(settings FocusSettings) error {
	changed := false

	if settings.AutoFocus != nil {
		want := 0.0
		if *settings.AutoFocus {
			want = 1.0
		}
		if i.device.Get(PropertyAutoFocus) != want {
			i.device.Set(PropertyAutoFocus, want)
			changed = true
		}
	}

	// オートフォーカスが有効化されない場合のみマニュアルフォーカスを適用する
	if (settings.AutoFocus == nil || !*settings.AutoFocus) && settings.Focus != nil {
		if *settings.Focus < focusMin || *settings.Focus > focusMax {
			return ErrFocusOutOfRange
		}
		if i.device.Get(PropertyFocus) != float64(*settings.Focus) {
			i.device.Set(PropertyFocus, float64(*settings.Focus))
			changed = true
		}
	}

	if changed {
		// フォーカスが安定するまで待つ
		i.device.Discard(settleFrames)
	} else {
		i.device.Discard(warmupFrames)
	}

	return nil
}
