package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"
)

var ErrCodeMismatch = booking.NewFieldError("verification_code", "is invalid or expired")

const codeDigits = 6

type VerificationCommands interface {
	SendCode(ctx context.Context, phone string) error
	shared.PhoneVerifier
}

type verificationCommandsImpl struct {
	store  shared.CodeStore
	sender shared.SMSSender
	ttl    time.Duration
}

func NewVerificationCommands(store shared.CodeStore, sender shared.SMSSender, ttl time.Duration) VerificationCommands {
	return &verificationCommandsImpl{store: store, sender: sender, ttl: ttl}
}

// SendCode replaces any pending code for phone with a fresh one.
func (uc *verificationCommandsImpl) SendCode(ctx context.Context, phone string) error {
	p, err := booking.NewPhone(phone)
	if err != nil {
		return booking.NewFieldError("phone", err.Error())
	}

	code, err := generateCode()
	if err != nil {
		return errs.Mark(errs.Wrap(err, "generate verification code"), errs.ErrInfrastructure)
	}
	if err := uc.store.Save(ctx, p.String(), code, uc.ttl); err != nil {
		return errs.Mark(errs.Wrap(err, "store verification code"), errs.ErrInfrastructure)
	}
	if err := uc.sender.SendVerificationCode(ctx, p.String(), code); err != nil {
		return errs.Mark(errs.Wrap(err, "send verification code"), errs.ErrInfrastructure)
	}
	return nil
}

// Check reports whether code is the pending code for phone without redeeming it.
func (uc *verificationCommandsImpl) Check(ctx context.Context, phone, code string) error {
	p, err := parseCodeRequest(phone, code)
	if err != nil {
		return err
	}
	ok, err := uc.store.Matches(ctx, p.String(), code)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "check verification code"), errs.ErrInfrastructure)
	}
	if !ok {
		return ErrCodeMismatch
	}
	return nil
}

// Verify redeems code for phone. A code can be redeemed once.
func (uc *verificationCommandsImpl) Verify(ctx context.Context, phone, code string) error {
	p, err := parseCodeRequest(phone, code)
	if err != nil {
		return err
	}
	ok, err := uc.store.Consume(ctx, p.String(), code)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "consume verification code"), errs.ErrInfrastructure)
	}
	if !ok {
		return ErrCodeMismatch
	}
	return nil
}

func parseCodeRequest(phone, code string) (booking.Phone, error) {
	v := &booking.Validator{}
	p, err := booking.NewPhone(phone)
	v.Check("phone", err)
	if code == "" {
		v.Add("verification_code", "is required")
	}
	return p, v.Err()
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeDigits, n.Int64()+100000), nil
}
