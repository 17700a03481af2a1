// Package camera キャプチャデバイスへの直列化されたアクセスを担う
//
// # 責務
// - キャプチャデバイスのオープン/クローズとプロパティ操作
// - 単一ミューテックスによるデバイスアクセスの排他制御
// - フォーカス/オートフォーカス調整とフレーム破棄による安定待ち
// - 撮影画像のJPEGファイル出力
// - /dev/video* デバイスの検出
//
// # 仕様
// - Device: キャプチャデバイスの低レベル境界（open/read/set/get/release）
// - Interface: ロックで直列化された操作面。撮影・フォーカス調整・
//   スナップショット読み取りが同じハンドル上で交錯することはない
// - フォーカス変更時は30フレーム、それ以外は5フレームを読み捨てる
// - マニュアルフォーカス値は0から255の範囲のみ受け付ける
//
// # 前提要件
//   - OpenCV 4: gocvによるデバイスアクセスに使用
//     https://gocv.io/getting-started/ を参照
//   - videoグループへの参加: デバイスアクセス権限
//     sudo usermod -a -G video $USER
package camera
