// Package main はカメラノードサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"camnode/internal/barcode"
	"camnode/internal/camera"
	"camnode/internal/config"
	"camnode/internal/node"
	"camnode/internal/resource"
	"camnode/internal/server"
)

func main() {
	// コマンドラインオプション
	var (
		host    = flag.String("host", "", "サーバーのホスト (デフォルト: 0.0.0.0)")
		port    = flag.Int("port", 0, "サーバーのポート (デフォルト: 2000)")
		address = flag.String("camera", "", "カメラアドレス (デバイス番号またはパス)")
		help    = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("Camera Node")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  camnode [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// コマンドラインオプションで設定を上書き
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *address != "" {
		cfg.Camera.Address = *address
	}

	// カメラインターフェースを作成
	addr := camera.ParseAddress(cfg.Camera.Address)
	cam := camera.NewInterface(camera.Opener(addr), cfg.ImagePath())

	// リソースマネージャクライアント（設定されている場合のみ）
	var resources *resource.Client
	if cfg.Node.ResourceManagerURL != "" {
		resources = resource.NewClient(cfg.Node.ResourceManagerURL)
	}

	// ノードを作成して起動
	n := node.New(cfg, cam, barcode.NewMultiFormatDecoder(), resources)

	ctx := context.Background()
	if err := n.Startup(ctx); err != nil {
		log.Fatalf("ノードの起動に失敗しました: %v", err)
	}
	n.Start(ctx)
	defer func() {
		if err := n.Stop(); err != nil {
			log.Printf("ノードの停止に失敗しました: %v", err)
		}
	}()

	// サーバーを起動
	srv := server.New(cfg, n)
	log.Printf("カメラノードサーバーを起動します: %s", cfg.ServerAddress())
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
