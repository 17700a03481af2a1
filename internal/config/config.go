package config

import (
	"fmt"
	"os"
	"time"
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server ServerConfig
	Node   NodeConfig
	Camera CameraConfig
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string // リッスンするホスト
	Port int    // リッスンするポート番号

	// タイムアウト設定
	ReadTimeout  time.Duration // 読み込みタイムアウト
	WriteTimeout time.Duration // 書き込みタイムアウト
}

// NodeConfig はノードとしての振る舞いの設定
type NodeConfig struct {
	Name string // ノード名（オーケストレータ上での識別名）

	// StateInterval は状態ハンドラの実行間隔
	StateInterval time.Duration

	// ResourceManagerURL はリソースマネージャのベースURL
	// 空文字列の場合、リソーステンプレートの登録をスキップする
	ResourceManagerURL string

	// ResultHistory は保持するアクション実行結果の最大件数
	ResultHistory int
}

// CameraConfig はカメラ関連の設定
type CameraConfig struct {
	// Address はカメラアドレス
	// 数値（デバイス番号）またはデバイスパス（例: /dev/video0）
	Address string

	// ImageDir は撮影画像の出力先ディレクトリ
	// 空文字列の場合、OSの一時ディレクトリを使用する
	ImageDir string

	// StreamFPS はMJPEGストリーミングのデフォルトフレームレート
	StreamFPS int
}

// Load は環境変数から設定を読み込む
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsIntOrDefault("PORT", 2000),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 0, // ストリーミング用にタイムアウト無効化
		},
		Node: NodeConfig{
			Name:               getEnvOrDefault("NODE_NAME", "camera_node"),
			StateInterval:      getEnvAsDurationOrDefault("STATE_INTERVAL", 2*time.Second),
			ResourceManagerURL: getEnvOrDefault("RESOURCE_MANAGER_URL", ""),
			ResultHistory:      getEnvAsIntOrDefault("RESULT_HISTORY", 100),
		},
		Camera: CameraConfig{
			Address:   getEnvOrDefault("CAMERA_ADDRESS", "0"),
			ImageDir:  getEnvOrDefault("IMAGE_DIR", ""),
			StreamFPS: getEnvAsIntOrDefault("STREAM_FPS", 10),
		},
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}

	if c.Node.Name == "" {
		return fmt.Errorf("ノード名が設定されていません")
	}

	if c.Node.StateInterval <= 0 {
		return fmt.Errorf("無効な状態更新間隔: %v", c.Node.StateInterval)
	}

	if c.Node.ResultHistory < 1 {
		return fmt.Errorf("無効な結果保持件数: %d", c.Node.ResultHistory)
	}

	if c.Camera.Address == "" {
		return fmt.Errorf("カメラアドレスが設定されていません")
	}

	if c.Camera.StreamFPS < 1 || c.Camera.StreamFPS > 60 {
		return fmt.Errorf("無効なストリーミングFPS: %d", c.Camera.StreamFPS)
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ImagePath は撮影画像の出力先ディレクトリを返す
// 未設定の場合はOSの一時ディレクトリを返す
func (c *Config) ImagePath() string {
	if c.Camera.ImageDir != "" {
		return c.Camera.ImageDir
	}
	return os.TempDir()
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault は環境変数をtime.Durationとして取得し、
// 設定されていない場合はデフォルト値を返す
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
