// Command msegat is a small diagnostic CLI around the gateway client. It
// loads credentials from the environment (or a .env file) and runs one
// gateway operation, printing the vendor response as indented JSON.
//
// Usage:
//
//	msegat send -to 9665xxxxxxxx -msg "Hello"
//	msegat send-vars -to A,B -msg "Hello {name}" -vars '[{"name":"John"},{"name":"Doe"}]'
//	msegat cost -contacts 9665xxxxxxxx -msg "Hello"
//	msegat send-otp -to 9665xxxxxxxx
//	msegat verify-otp -code 123456 -id <session-id>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Kareem-3del/Msegat/internal/config"
	"github.com/Kareem-3del/Msegat/pkg/msegat"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.Server.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	client, err := msegat.NewClient(msegat.Config{
		Username: cfg.Gateway.Username,
		APIKey:   cfg.Gateway.APIKey,
		Sender:   cfg.Gateway.Sender,
		BaseURL:  cfg.Gateway.BaseURL,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	var result interface{}
	switch os.Args[1] {
	case "send":
		result, err = runSend(ctx, client, os.Args[2:])
	case "send-vars":
		result, err = runSendVars(ctx, client, os.Args[2:])
	case "cost":
		result, err = runCost(ctx, client, os.Args[2:])
	case "send-otp":
		result, err = runSendOTP(ctx, client, os.Args[2:])
	case "verify-otp":
		result, err = runVerifyOTP(ctx, client, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Fatal(err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatalf("Failed to render response: %v", err)
	}
	fmt.Println(string(out))
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: msegat <send|send-vars|cost|send-otp|verify-otp> [flags]")
}

func runSend(ctx context.Context, client *msegat.Client, args []string) (interface{}, error) {
	flags := flag.NewFlagSet("send", flag.ExitOnError)
	to := flags.String("to", "", "recipient number (or comma-separated list)")
	msg := flags.String("msg", "", "message text")
	_ = flags.Parse(args)

	return client.SendMessage(ctx, *to, *msg)
}

func runSendVars(ctx context.Context, client *msegat.Client, args []string) (interface{}, error) {
	flags := flag.NewFlagSet("send-vars", flag.ExitOnError)
	to := flags.String("to", "", "comma-separated recipient numbers")
	msg := flags.String("msg", "", "message template with {placeholders}")
	varsJSON := flags.String("vars", "[]", "substitution variables as a JSON array of objects")
	timeToSend := flags.String("time-to-send", "", `"Now" or "Later"`)
	exactTime := flags.String("exact-time", "", "delivery time when -time-to-send is Later")
	encoding := flags.String("encoding", "", "message encoding override")
	_ = flags.Parse(args)

	var vars []msegat.Variables
	if err := json.Unmarshal([]byte(*varsJSON), &vars); err != nil {
		return nil, fmt.Errorf("invalid -vars value: %w", err)
	}

	var opts *msegat.PersonalizedOptions
	if *timeToSend != "" || *exactTime != "" || *encoding != "" {
		opts = &msegat.PersonalizedOptions{
			TimeToSend:  *timeToSend,
			ExactTime:   *exactTime,
			MsgEncoding: *encoding,
		}
	}

	return client.SendPersonalizedMessages(ctx, strings.Split(*to, ","), *msg, vars, opts)
}

func runCost(ctx context.Context, client *msegat.Client, args []string) (interface{}, error) {
	flags := flag.NewFlagSet("cost", flag.ExitOnError)
	contactType := flags.String("contact-type", "numbers", "contact type")
	contacts := flags.String("contacts", "", "numbers or group identifiers")
	msg := flags.String("msg", "", "message text")
	by := flags.String("by", "numbers", "grouping selector")
	encoding := flags.String("encoding", "", "message encoding")
	_ = flags.Parse(args)

	return client.CalculateMessageCost(ctx, *contactType, *contacts, *msg, *by, *encoding)
}

func runSendOTP(ctx context.Context, client *msegat.Client, args []string) (interface{}, error) {
	flags := flag.NewFlagSet("send-otp", flag.ExitOnError)
	to := flags.String("to", "", "recipient number")
	lang := flags.String("lang", "En", "message language (En or Ar)")
	_ = flags.Parse(args)

	return client.SendOTPCode(ctx, *to, *lang)
}

func runVerifyOTP(ctx context.Context, client *msegat.Client, args []string) (interface{}, error) {
	flags := flag.NewFlagSet("verify-otp", flag.ExitOnError)
	code := flags.String("code", "", "code the user received")
	id := flags.String("id", "", "OTP session id from send-otp")
	lang := flags.String("lang", "En", "message language (En or Ar)")
	_ = flags.Parse(args)

	return client.VerifyOTPCode(ctx, *code, *id, *lang)
}
