package bootstrap

import (
	"time"

	"condo-reserve/internal/pkg/config"
	"condo-reserve/internal/pkg/errs"
	"condo-reserve/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT duration")
	}
	return jwt.NewService(cfg.JWT.Secret, duration), nil
}
