// Package barcode 撮影画像からのバーコード読み取りを担う
//
// デコード処理はgozxingに委譲する。画像内にバーコードが存在しない
// ことはエラーとして扱わない（空文字列を返す）
package barcode

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
)

// Decoder は画像からバーコードを読み取るインターフェース
type Decoder interface {
	// Decode は画像内の最初のバーコードの値を返す
	// バーコードが見つからない場合は空文字列を返す
	Decode(img image.Image) (string, error)
}

// MultiFormatDecoder はgozxingのマルチフォーマットリーダーによるDecoder実装
// QRコードと主要な1次元バーコードを読み取れる
type MultiFormatDecoder struct{}

// NewMultiFormatDecoder は新しいMultiFormatDecoderを作成する
func NewMultiFormatDecoder() *MultiFormatDecoder {
	return &MultiFormatDecoder{}
}

// Decode は画像内の最初のバーコードの値を返す
func (d *MultiFormatDecoder) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("画像の変換に失敗: %w", err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}

	// リーダーはデコード状態を持つため呼び出しごとに作成する
	reader := gozxing.NewMultiFormatReader()
	result, err := reader.Decode(bmp, hints)
	if err != nil {
		// バーコードなしはエラーではない
		if _, ok := err.(gozxing.NotFoundException); ok {
			return "", nil
		}
		return "", fmt.Errorf("バーコードのデコードに失敗: %w", err)
	}

	return result.GetText(), nil
}
