package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/folio-next/internal/client"
)

func main() {
	var baseURL string
	flag.StringVar(&baseURL, "addr", "http://127.0.0.1:8080", "API 地址")
	flag.Parse()

	api := client.New(baseURL)
	reader := bufio.NewReader(os.Stdin)
	ctx := context.Background()

	switch flag.Arg(0) {
	case "login", "":
		runLogin(ctx, api, reader)
	case "reset":
		runResetFlow(ctx, api, reader)
	default:
		fmt.Fprintf(os.Stderr, "未知命令: %s (可用: login, reset)\n", flag.Arg(0))
		os.Exit(2)
	}
}

func runLogin(ctx context.Context, api *client.Client, reader *bufio.Reader) {
	guard := client.NewLoginGuard(3)

	for {
		if err := guard.Check(); err != nil {
			fmt.Println("登录尝试次数已用尽，转入找回密码流程")
			runResetFlow(ctx, api, reader)
			return
		}

		password, err := promptPassword("请输入管理员密码: ")
		if err != nil {
			fatalf("读取密码失败: %v", err)
		}

		result, err := api.Login(ctx, password)
		if err != nil {
			if errors.Is(err, client.ErrTooManyRequest) {
				fatalf("登录已被服务端临时锁定，请稍后再试")
			}
			if errors.Is(err, client.ErrUnauthorized) {
				guard.RecordFailure()
				fmt.Printf("密码错误，剩余尝试次数: %d\n", guard.Remaining())
				continue
			}
			fatalf("登录失败: %v", err)
		}

		guard.Reset()
		fmt.Printf("%s (admin: %s <%s>)\n", result.Message, result.Admin.Username, result.Admin.Email)
		fmt.Printf("token: %s\n", result.Token)
		return
	}
}

func runResetFlow(ctx context.Context, api *client.Client, reader *bufio.Reader) {
	flow := client.NewResetFlow(api)

	email := promptLine(reader, "请输入账号邮箱: ")
	if err := flow.SubmitEmail(ctx, email); err != nil {
		fatalf("发送验证码失败: %v", err)
	}
	fmt.Println("验证码已发送（如果该邮箱存在对应账号）")

	for flow.Stage() == client.StageCode {
		input := promptLine(reader, "请输入验证码（输入 r 重新发送）: ")
		if strings.EqualFold(input, "r") {
			if err := flow.ResendCode(ctx); err != nil {
				if errors.Is(err, client.ErrResendCooldown) {
					fmt.Printf("请等待 %s 后再重发\n", flow.ResendRemaining().Round(time.Second))
					continue
				}
				fatalf("重发验证码失败: %v", err)
			}
			fmt.Println("验证码已重新发送")
			continue
		}
		if err := flow.SubmitCode(ctx, input); err != nil {
			fmt.Printf("验证码校验失败: %v\n", err)
		}
	}

	for flow.Stage() == client.StagePassword {
		newPassword, err := promptPassword("请输入新密码: ")
		if err != nil {
			fatalf("读取密码失败: %v", err)
		}
		confirmPassword, err := promptPassword("请再次输入新密码: ")
		if err != nil {
			fatalf("读取密码失败: %v", err)
		}
		if err := flow.SubmitPassword(ctx, newPassword, confirmPassword); err != nil {
			fmt.Printf("重置失败: %v\n", err)
			if flow.Stage() == client.StageCode {
				fmt.Println("验证码已失效，请重新校验")
				runResetCodeStage(ctx, flow, bufio.NewReader(os.Stdin))
			}
			continue
		}
	}

	if flow.Stage() == client.StageSuccess {
		fmt.Println("密码重置成功，请使用新密码登录")
	}
}

func runResetCodeStage(ctx context.Context, flow *client.ResetFlow, reader *bufio.Reader) {
	for flow.Stage() == client.StageCode {
		input := promptLine(reader, "请输入验证码: ")
		if err := flow.SubmitCode(ctx, input); err != nil {
			fmt.Printf("验证码校验失败: %v\n", err)
		}
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func promptLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}
