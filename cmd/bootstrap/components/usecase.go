package components

import (
	"booking-engine/internal/domain/notification"
	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/usecase"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			pricing.NewDefaultPriceCalculator,
			fx.As(new(pricing.PriceCalculator)),
		),
		NewBookingDeps,
		NewVerificationCommands,
		func(v commands.VerificationCommands) shared.PhoneVerifier { return v },
		commands.NewRoomBookingCommands,
		commands.NewRestaurantBookingCommands,
		commands.NewAuthCommands,
		queries.NewCatalogQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewUserQueries,
		usecase.NewTokenValidator,
	),
)

func NewBookingDeps(
	cfg config.Config,
	uow shared.UnitOfWork,
	verifier shared.PhoneVerifier,
	emitter notification.Emitter,
	observer shared.ReservationObserver,
) commands.BookingDeps {
	return commands.BookingDeps{
		UoW:                      uow,
		Verifier:                 verifier,
		Emitter:                  emitter,
		Observer:                 observer,
		RequireGuestVerification: cfg.Booking.RequireGuestPhoneVerification,
	}
}

func NewVerificationCommands(cfg config.Config, store shared.CodeStore, sender shared.SMSSender) commands.VerificationCommands {
	return commands.NewVerificationCommands(store, sender, cfg.Redis.VerificationCodeTTL)
}
