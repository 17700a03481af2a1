package config

import (
	"os"
	"testing"
	"time"
)

// TestConfigLoad は設定の読み込みをテストする
func TestConfigLoad(t *testing.T) {
	// 設定を読み込む
	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// 基本的な設定値を検証
	if cfg == nil {
		t.Fatal("設定がnilです")
	}

	// サーバー設定の検証
	if cfg.Server.Host == "" {
		t.Error("サーバーホストが設定されていません")
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		t.Errorf("無効なポート番号: %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		t.Error("読み込みタイムアウトが設定されていません")
	}
	// WriteTimeout は 0（無効）でも正常（ストリーミング用）
	if cfg.Server.WriteTimeout < 0 {
		t.Error("書き込みタイムアウトが負の値です")
	}

	// ノード設定の検証
	if cfg.Node.Name == "" {
		t.Error("ノード名が設定されていません")
	}
	if cfg.Node.StateInterval <= 0 {
		t.Error("状態更新間隔が設定されていません")
	}
	if cfg.Node.ResultHistory <= 0 {
		t.Error("結果保持件数が設定されていません")
	}

	// カメラ設定の検証
	if cfg.Camera.Address == "" {
		t.Error("カメラアドレスが設定されていません")
	}
	if cfg.Camera.StreamFPS <= 0 {
		t.Error("ストリーミングFPSが設定されていません")
	}
}

// TestConfigValidation は設定の検証をテストする
func TestConfigValidation(t *testing.T) {
	// 正常な設定のベース
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{
				Host: "localhost",
				Port: 2000,
			},
			Node: NodeConfig{
				Name:          "camera_node",
				StateInterval: 2 * time.Second,
				ResultHistory: 100,
			},
			Camera: CameraConfig{
				Address:   "0",
				StreamFPS: 10,
			},
		}
	}

	testCases := []struct {
		name      string
		modify    func(cfg *Config)
		expectErr bool
	}{
		{
			name:      "正常な設定",
			modify:    func(cfg *Config) {},
			expectErr: false,
		},
		{
			name: "無効なポート番号",
			modify: func(cfg *Config) {
				cfg.Server.Port = 99999
			},
			expectErr: true,
		},
		{
			name: "ノード名なし",
			modify: func(cfg *Config) {
				cfg.Node.Name = ""
			},
			expectErr: true,
		},
		{
			name: "無効な状態更新間隔",
			modify: func(cfg *Config) {
				cfg.Node.StateInterval = 0
			},
			expectErr: true,
		},
		{
			name: "無効な結果保持件数",
			modify: func(cfg *Config) {
				cfg.Node.ResultHistory = 0
			},
			expectErr: true,
		},
		{
			name: "カメラアドレスなし",
			modify: func(cfg *Config) {
				cfg.Camera.Address = ""
			},
			expectErr: true,
		},
		{
			name: "無効なストリーミングFPS",
			modify: func(cfg *Config) {
				cfg.Camera.StreamFPS = 0
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.modify(cfg)

			err := cfg.Validate()
			if tc.expectErr && err == nil {
				t.Error("エラーが期待されましたが、エラーが発生しませんでした")
			}
			if !tc.expectErr && err != nil {
				t.Errorf("予期しないエラーが発生しました: %v", err)
			}
		})
	}
}

// TestServerAddress はサーバーアドレスの生成をテストする
func TestServerAddress(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{
			Host: "192.168.1.100",
			Port: 9090,
		},
	}

	expected := "192.168.1.100:9090"
	actual := cfg.ServerAddress()

	if actual != expected {
		t.Errorf("サーバーアドレスが一致しません: got %s, want %s", actual, expected)
	}
}

// TestImagePath は画像出力先ディレクトリの解決をテストする
func TestImagePath(t *testing.T) {
	// 明示的に設定した場合
	cfg := &Config{
		Camera: CameraConfig{ImageDir: "/var/lib/camnode/images"},
	}
	if got := cfg.ImagePath(); got != "/var/lib/camnode/images" {
		t.Errorf("画像出力先が一致しません: got %s", got)
	}

	// 未設定の場合はOSの一時ディレクトリにフォールバックする
	cfg.Camera.ImageDir = ""
	if got := cfg.ImagePath(); got != os.TempDir() {
		t.Errorf("一時ディレクトリへのフォールバックが機能していません: got %s", got)
	}
}

// TestEnvironmentVariables は環境変数の処理をテストする
// 注意: このテストは環境変数を変更するため、parallelは使わない
func TestEnvironmentVariables(t *testing.T) {
	// テスト用の環境変数を設定
	t.Setenv("SERVER_HOST", "test.example.com")
	t.Setenv("PORT", "9999")
	t.Setenv("NODE_NAME", "bench_camera")
	t.Setenv("STATE_INTERVAL", "5s")
	t.Setenv("CAMERA_ADDRESS", "/dev/video2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	if cfg.Server.Host != "test.example.com" {
		t.Errorf("環境変数のホストが反映されていません: got %s, want test.example.com", cfg.Server.Host)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("環境変数のポートが反映されていません: got %d, want 9999", cfg.Server.Port)
	}
	if cfg.Node.Name != "bench_camera" {
		t.Errorf("環境変数のノード名が反映されていません: got %s, want bench_camera", cfg.Node.Name)
	}
	if cfg.Node.StateInterval != 5*time.Second {
		t.Errorf("環境変数の状態更新間隔が反映されていません: got %v, want 5s", cfg.Node.StateInterval)
	}
	if cfg.Camera.Address != "/dev/video2" {
		t.Errorf("環境変数のカメラアドレスが反映されていません: got %s, want /dev/video2", cfg.Camera.Address)
	}
}
