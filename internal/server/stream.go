package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"camnode/internal/camera"
	"camnode/internal/generated"
)

// ストリーミングFPSの許容範囲
const (
	minStreamFPS = 1
	maxStreamFPS = 60
)

// StreamFrames はMJPEGストリーミングエンドポイントの実装
func (h *CameraHandler) StreamFrames(c *gin.Context, params generated.StreamFramesParams) {
	fps := h.config.Camera.StreamFPS
	if params.Fps != nil {
		fps = *params.Fps
	}
	fps = clampFPS(fps)

	// 開始前にカメラの接続を確認する
	frame, err := h.node.CaptureFrame()
	if err != nil {
		if errors.Is(err, camera.ErrNotConnected) {
			errorJSON(c, http.StatusServiceUnavailable, "カメラが接続されていません")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "フレームの取得に失敗しました")
		return
	}

	// レスポンスヘッダーを設定
	c.Header("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("Access-Control-Allow-Origin", "*")

	// レスポンスライターを取得
	writer := c.Writer
	flusher, ok := writer.(http.Flusher)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	// クライアント切断を検知するためのコンテキスト
	clientGone := c.Request.Context().Done()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	// ストリーミングループ
	for {
		if err := writeMJPEGFrame(writer, frame); err != nil {
			return
		}
		flusher.Flush()

		select {
		case <-clientGone:
			// クライアントが切断された
			return

		case <-ticker.C:
			frame, err = h.node.CaptureFrame()
			if err != nil {
				// カメラが切断された場合はストリームを終了する
				return
			}
		}
	}
}

// writeMJPEGFrame はMJPEGフレームを1つ書き込む
func writeMJPEGFrame(w http.ResponseWriter, frame []byte) error {
	if _, err := w.Write([]byte("--frame\r\n")); err != nil {
		return err
	}

	if _, err := w.Write([]byte("Content-Type: image/jpeg\r\n\r\n")); err != nil {
		return err
	}

	if _, err := w.Write(frame); err != nil {
		return err
	}

	if _, err := w.Write([]byte("\r\n")); err != nil {
		return err
	}

	return nil
}

// clampFPS はFPSを許容範囲に収める
func clampFPS(fps int) int {
	if fps < minStreamFPS {
		return minStreamFPS
	}
	if fps > maxStreamFPS {
		return maxStreamFPS
	}
	return fps
}
