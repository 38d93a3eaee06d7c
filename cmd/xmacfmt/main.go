// xmacfmt 是 MAC 地址格式化与检查的命令行工具。
//
// 用法:
//
//	xmacfmt [命令] [命令选项] [地址...]
//
// 命令:
//
//	fmt [地址...]   将地址转换为指定表示法（默认命令）
//	info [地址...]  显示地址的全部表示法与属性
//	help            显示帮助信息
//
// fmt 命令选项:
//
//	-n, --notation  目标表示法: canonical, hex, dot, hexadecimal (默认: canonical)
//	-a, --all       输出全部四种表示法
//
// info 命令选项:
//
//	-j, --json      以 JSON 数组输出
//
// 不提供地址参数时，从标准输入按行读取地址，空行跳过。
// 解析失败的地址逐个报告到标准错误，其余地址继续处理。
//
// 退出码:
//
//	0: 全部地址处理成功
//	1: 存在无法解析的地址（其余地址仍会处理并输出）
//	2: 参数错误（未知表示法、未知 flag、未知命令等）
//
// 示例:
//
//	xmacfmt fmt 12:34:56:AB:CD:EF             # 12-34-56-ab-cd-ef
//	xmacfmt fmt -n dot 12-34-56-ab-cd-ef      # 1234.56ab.cdef
//	xmacfmt fmt -a 0x123456abcdef             # 四种表示法各一行
//	cat macs.txt | xmacfmt fmt -n hex         # 批量转换
//	xmacfmt info 01:00:5e:00:00:01            # 地址属性明细
//	xmacfmt info -j ff-ff-ff-ff-ff-ff         # JSON 输出
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "xmacfmt",
		Usage:          "MAC 地址格式化与检查工具",
		Version:        fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Commands:       createCommands(),
		DefaultCommand: "fmt",
		Authors: []any{
			"xmac authors",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			// ExitCoder 错误（如未知命令）的消息需在此输出，
			// 替代 HandleExitCoder 的默认 os.Exit 行为。
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
		Description: `xmacfmt 围绕 xmac 库构建，支持在四种 MAC 地址表示法之间转换:

  canonical     12-34-56-ab-cd-ef   (IEEE 802 规范形式)
  hex           12:34:56:ab:cd:ef   (冒号分隔)
  dot           1234.56ab.cdef      (点分四位)
  hexadecimal   0x123456abcdef      (纯十六进制)

解析对分隔符宽松: -、:、. 可混用，大小写不敏感，
「0x」前缀可出现在任意位置并重置已累积的字节。
输出一律为小写。`,
	}
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			// ExitErrHandler 或 flag 解析器已向 stderr 输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
