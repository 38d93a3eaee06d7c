package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/omeyang/xmac"
	"github.com/urfave/cli/v3"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示参数错误，由 run() 映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// isCLIUsageError 判断是否为 CLI 框架产生的参数错误（未知 flag、未知命令等）。
func isCLIUsageError(err error) bool {
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "invalid value")
}

// allNotations 按固定顺序列出四种表示法，用于 --all 与 info 输出。
var allNotations = []xmac.Notation{
	xmac.Canonical,
	xmac.HexString,
	xmac.DotNotation,
	xmac.Hexadecimal,
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createFmtCommand(),
		createInfoCommand(),
	}
}

// createFmtCommand 创建 fmt 子命令（默认命令）。
func createFmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Aliases:   []string{"f"},
		Usage:     "将地址转换为指定表示法",
		ArgsUsage: "[地址...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "notation",
				Aliases: []string{"n"},
				Usage:   "目标表示法 (canonical, hex, dot, hexadecimal)",
				Value:   "canonical",
			},
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "输出全部四种表示法",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			inputs, err := gatherInputs(cmd.Args().Slice(), os.Stdin)
			if err != nil {
				return err
			}
			return cmdFmt(ctx, os.Stdout, cmd.String("notation"), cmd.Bool("all"), inputs)
		},
	}
}

// createInfoCommand 创建 info 子命令。
func createInfoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Aliases:   []string{"i"},
		Usage:     "显示地址的全部表示法与属性",
		ArgsUsage: "[地址...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "以 JSON 数组输出",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			inputs, err := gatherInputs(cmd.Args().Slice(), os.Stdin)
			if err != nil {
				return err
			}
			return cmdInfo(ctx, os.Stdout, cmd.Bool("json"), inputs)
		},
	}
}

// parseNotation 将命令行表示法名称映射到 [xmac.Notation]。
// 未知名称返回 usageError（退出码 2）。
func parseNotation(name string) (xmac.Notation, error) {
	switch strings.ToLower(name) {
	case "canonical":
		return xmac.Canonical, nil
	case "hex", "hex-string", "colon":
		return xmac.HexString, nil
	case "dot", "dot-notation":
		return xmac.DotNotation, nil
	case "hexadecimal", "0x":
		return xmac.Hexadecimal, nil
	default:
		return xmac.Canonical, &usageError{
			msg: fmt.Sprintf("未知表示法 %q（可选: canonical, hex, dot, hexadecimal）", name),
		}
	}
}

// gatherInputs 返回待处理的地址列表。
// 有命令行参数时直接使用；否则从 r 按行读取，跳过空行，去除行首尾空白。
func gatherInputs(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取标准输入失败: %w", err)
	}

	return inputs, nil
}

// cmdFmt 将每个地址转换为目标表示法输出。
// 设计决策: 单个地址解析失败不中断处理，逐个报告到 stderr，
// 最后通过 exitError 返回退出码 1，使批量转换一次报告所有坏数据。
func cmdFmt(ctx context.Context, w io.Writer, notationName string, all bool, inputs []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	notation, err := parseNotation(notationName)
	if err != nil {
		return err
	}

	failed := false
	for _, in := range inputs {
		addr, parseErr := xmac.Parse(in)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "xmacfmt: %q: %v\n", in, parseErr)
			failed = true
			continue
		}

		if all {
			fmt.Fprint(w, formatAll(addr))
		} else {
			fmt.Fprintln(w, addr.FormatString(notation))
		}
	}

	if failed {
		return &exitError{code: 1}
	}
	return nil
}

// cmdInfo 输出每个地址的表示法与属性明细。
// JSON 模式下每个地址输出一行 JSON 对象；文本模式下地址之间以空行分隔。
func cmdInfo(ctx context.Context, w io.Writer, jsonOut bool, inputs []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	failed := false
	printed := 0

	for _, in := range inputs {
		addr, parseErr := xmac.Parse(in)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "xmacfmt: %q: %v\n", in, parseErr)
			failed = true
			continue
		}

		if jsonOut {
			data, marshalErr := json.Marshal(newAddrInfo(addr))
			if marshalErr != nil {
				return fmt.Errorf("序列化 JSON 失败: %w", marshalErr)
			}
			fmt.Fprintln(w, string(data))
			continue
		}

		if printed > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprint(w, renderInfo(addr))
		printed++
	}

	if failed {
		return &exitError{code: 1}
	}
	return nil
}

// addrInfo 是 info 命令的结构化输出。
// Address 字段直接使用 [xmac.Addr] 的 JSON 编码（规范表示法字符串）。
type addrInfo struct {
	Address     xmac.Addr `json:"address"`
	Canonical   string    `json:"canonical"`
	HexString   string    `json:"hex_string"`
	DotNotation string    `json:"dot_notation"`
	Hexadecimal string    `json:"hexadecimal"`
	Unicast     bool      `json:"unicast"`
	Multicast   bool      `json:"multicast"`
	Universal   bool      `json:"universal"`
	Local       bool      `json:"local"`
	Nil         bool      `json:"nil"`
	Broadcast   bool      `json:"broadcast"`
}

func newAddrInfo(addr xmac.Addr) addrInfo {
	return addrInfo{
		Address:     addr,
		Canonical:   addr.FormatString(xmac.Canonical),
		HexString:   addr.FormatString(xmac.HexString),
		DotNotation: addr.FormatString(xmac.DotNotation),
		Hexadecimal: addr.FormatString(xmac.Hexadecimal),
		Unicast:     addr.IsUnicast(),
		Multicast:   addr.IsMulticast(),
		Universal:   addr.IsUniversal(),
		Local:       addr.IsLocal(),
		Nil:         addr.IsNil(),
		Broadcast:   addr.IsBroadcast(),
	}
}

// formatAll 按固定顺序输出地址的全部四种表示法，每行一种。
func formatAll(addr xmac.Addr) string {
	var sb strings.Builder
	for _, n := range allNotations {
		fmt.Fprintf(&sb, "%-13s %s\n", n.String()+":", addr.FormatString(n))
	}
	return sb.String()
}

// renderInfo 输出单个地址的文本明细。
func renderInfo(addr xmac.Addr) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "地址: %s\n", addr)
	fmt.Fprint(&sb, formatAll(addr))
	fmt.Fprintf(&sb, "寻址: %s\n", castLabel(addr))
	fmt.Fprintf(&sb, "管理: %s\n", adminLabel(addr))
	if special := specialLabel(addr); special != "" {
		fmt.Fprintf(&sb, "特殊: %s\n", special)
	}
	return sb.String()
}

// castLabel 返回寻址类型标签。
func castLabel(addr xmac.Addr) string {
	if addr.IsMulticast() {
		return "多播"
	}
	return "单播"
}

// adminLabel 返回管理类型标签。
func adminLabel(addr xmac.Addr) string {
	if addr.IsLocal() {
		return "本地管理"
	}
	return "全球管理"
}

// specialLabel 返回特殊地址标签，非特殊地址返回空串。
func specialLabel(addr xmac.Addr) string {
	switch {
	case addr.IsNil():
		return "空地址"
	case addr.IsBroadcast():
		return "广播地址"
	default:
		return ""
	}
}
