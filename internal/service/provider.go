package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

//go:generate mockgen -source=provider.go -destination=../mock/wallet_provider_mock.go -package=mock

// WalletProvider is the external source of wallet addresses. How it obtains
// one (browser wallet, hardware device, typed in) is its own business.
type WalletProvider interface {
	// Connect returns an address, or [ErrConnectCancelled] when the user
	// declined.
	Connect(ctx context.Context) (string, error)

	// Disconnect releases the provider's connection, if it holds one.
	Disconnect(ctx context.Context) error
}

// StaticProvider always connects with the same address. A blank address
// behaves like a declined request.
type StaticProvider struct {
	Address string
}

func NewStaticProvider(address string) *StaticProvider {
	return &StaticProvider{Address: address}
}

func (p *StaticProvider) Connect(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(p.Address) == "" {
		return "", ErrConnectCancelled
	}
	return p.Address, nil
}

func (p *StaticProvider) Disconnect(context.Context) error {
	return nil
}

// PromptProvider asks for the address on a terminal. An empty answer or end
// of input cancels the connection.
type PromptProvider struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPromptProvider(in io.Reader, out io.Writer) *PromptProvider {
	return &PromptProvider{reader: bufio.NewReader(in), out: out}
}

func (p *PromptProvider) Connect(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(p.out, "Wallet address: ")
	input, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrConnectCancelled
	}
	return input, nil
}

func (p *PromptProvider) Disconnect(context.Context) error {
	return nil
}
