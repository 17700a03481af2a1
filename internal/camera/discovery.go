package camera

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// deviceNumberPattern は/dev/videoNからデバイス番号を抽出するパターン
var deviceNumberPattern = regexp.MustCompile(`video(\d+)$`)

// ScanDevices はシステム内の利用可能なカメラデバイスをスキャンする
// Linuxの/dev/video*デバイスを番号順に返す
func ScanDevices(ctx context.Context) ([]string, error) {
	matches, err := filepath.Glob("/dev/video*")
	if err != nil {
		return nil, fmt.Errorf("デバイスのスキャンに失敗: %w", err)
	}

	// デバイス番号でソート
	sort.Slice(matches, func(i, j int) bool {
		return extractDeviceNumber(matches[i]) < extractDeviceNumber(matches[j])
	})

	devices := make([]string, 0, len(matches))
	for _, match := range matches {
		// コンテキストのキャンセルをチェック
		select {
		case <-ctx.Done():
			return devices, ctx.Err()
		default:
		}

		if IsDeviceAvailable(match) {
			devices = append(devices, match)
		}
	}

	return devices, nil
}

// IsDeviceAvailable は指定されたデバイスが利用可能かチェックする
func IsDeviceAvailable(device string) bool {
	// デバイスファイルの存在確認
	if _, err := os.Stat(device); err != nil {
		return false
	}

	// デバイスファイルの読み取り権限チェック
	file, err := os.OpenFile(device, os.O_RDONLY, 0)
	if err != nil {
		return false
	}
	defer func() {
		_ = file.Close()
	}()

	return true
}

// extractDeviceNumber はデバイスパスから番号を抽出する
// 抽出できない場合は-1を返す
func extractDeviceNumber(device string) int {
	m := deviceNumberPattern.FindStringSubmatch(device)
	if len(m) != 2 {
		return -1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return n
}
