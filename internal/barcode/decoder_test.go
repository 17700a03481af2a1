package barcode

import (
	"image"
	"image/color"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

func TestMultiFormatDecoder_QRCode(t *testing.T) {
	const content = "LAB-SAMPLE-0042"

	// テスト用のQRコード画像を生成する
	writer := qrcode.NewQRCodeWriter()
	matrix, err := writer.Encode(content, gozxing.BarcodeFormat_QR_CODE, 256, 256, nil)
	if err != nil {
		t.Fatalf("QRコードの生成に失敗: %v", err)
	}

	decoder := NewMultiFormatDecoder()
	got, err := decoder.Decode(matrix)
	if err != nil {
		t.Fatalf("Decodeに失敗: %v", err)
	}

	if got != content {
		t.Errorf("デコード結果が不正: got %s, want %s", got, content)
	}
}

func TestMultiFormatDecoder_Code128(t *testing.T) {
	const content = "PLATE-00731"

	writer := oned.NewCode128Writer()
	matrix, err := writer.Encode(content, gozxing.BarcodeFormat_CODE_128, 400, 100, nil)
	if err != nil {
		t.Fatalf("Code128バーコードの生成に失敗: %v", err)
	}

	decoder := NewMultiFormatDecoder()
	got, err := decoder.Decode(matrix)
	if err != nil {
		t.Fatalf("Decodeに失敗: %v", err)
	}

	if got != content {
		t.Errorf("デコード結果が不正: got %s, want %s", got, content)
	}
}

func TestMultiFormatDecoder_NoBarcode(t *testing.T) {
	// バーコードを含まない単色画像
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.White)
		}
	}

	decoder := NewMultiFormatDecoder()
	got, err := decoder.Decode(img)
	if err != nil {
		t.Fatalf("バーコードなしの画像でエラーが発生しました: %v", err)
	}

	if got != "" {
		t.Errorf("バーコードなしの画像で値が返されました: %s", got)
	}
}
