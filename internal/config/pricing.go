package config

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// PricingConfig is the tunable part of the pricing policy. The service tier
// catalog is compiled in and never read from here.
type PricingConfig struct {
	BookingFee            float64            `mapstructure:"bookingFee"`
	MemberDiscountPercent float64            `mapstructure:"memberDiscountPercent"`
	JourneyMileageRate    float64            `mapstructure:"journeyMileageRate"`
	TimeOfDayMultipliers  map[string]float64 `mapstructure:"timeOfDayMultipliers"`
	FrequencyDiscounts    map[string]float64 `mapstructure:"frequencyDiscounts"`
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		BookingFee:            10,
		MemberDiscountPercent: 20,
		JourneyMileageRate:    0.50,
		TimeOfDayMultipliers: map[string]float64{
			"standard": 1.0,
			"evening":  1.15,
			"night":    1.25,
		},
		FrequencyDiscounts: map[string]float64{
			"once":    0,
			"weekly":  5,
			"daily":   10,
			"monthly": 15,
		},
	}
}

// PricingConfigHolder serves the current pricing config and swaps it on file
// change.
type PricingConfigHolder struct {
	current atomic.Value // holds PricingConfig
}

// NewStaticPricingConfigHolder returns a holder that never reloads.
func NewStaticPricingConfigHolder(cfg PricingConfig) *PricingConfigHolder {
	holder := &PricingConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func NewPricingConfigHolder(appCfg Config, log *zap.Logger) (*PricingConfigHolder, error) {
	log = log.Named("config.pricing")
	v := newPricingViper(appCfg.PricingConfigPath)

	found := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		found = false
	}

	cfg, err := decodePricingConfig(v)
	if err != nil {
		return nil, err
	}

	holder := NewStaticPricingConfigHolder(cfg)
	if !found {
		log.Info("pricing config file not found, using defaults")
		return holder, nil
	}
	log.Info("pricing config loaded", zap.String("file", v.ConfigFileUsed()))

	if appCfg.PricingHotReload {
		v.OnConfigChange(func(e fsnotify.Event) {
			updated, err := decodePricingConfig(v)
			if err != nil {
				log.Warn("pricing config reload rejected", zap.String("file", e.Name), zap.Error(err))
				return
			}
			holder.current.Store(updated)
			log.Info("pricing config reloaded", zap.String("file", e.Name))
		})
		v.WatchConfig()
	}

	return holder, nil
}

func (h *PricingConfigHolder) Get() PricingConfig {
	return h.current.Load().(PricingConfig)
}

func newPricingViper(path string) *viper.Viper {
	v := viper.New()

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pricing")
		v.SetConfigType("yml")
		v.AddConfigPath("/etc/armora")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("ARMORA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults are set per leaf so a file that overrides one multiplier keeps
	// the others.
	defaults := DefaultPricingConfig()
	v.SetDefault("pricing.bookingFee", defaults.BookingFee)
	v.SetDefault("pricing.memberDiscountPercent", defaults.MemberDiscountPercent)
	v.SetDefault("pricing.journeyMileageRate", defaults.JourneyMileageRate)
	for key, m := range defaults.TimeOfDayMultipliers {
		v.SetDefault("pricing.timeOfDayMultipliers."+key, m)
	}
	for key, d := range defaults.FrequencyDiscounts {
		v.SetDefault("pricing.frequencyDiscounts."+key, d)
	}
	return v
}

// decodePricingConfig merges file, env and defaults. UnmarshalKey would
// return the file's pricing map as-is and drop nested defaults, so the whole
// tree is decoded instead.
func decodePricingConfig(v *viper.Viper) (PricingConfig, error) {
	settings := struct {
		Pricing PricingConfig `mapstructure:"pricing"`
	}{Pricing: DefaultPricingConfig()}
	if err := v.Unmarshal(&settings); err != nil {
		return PricingConfig{}, err
	}
	cfg := settings.Pricing
	if err := validatePricingConfig(cfg); err != nil {
		return PricingConfig{}, err
	}
	return cfg, nil
}

func validatePricingConfig(cfg PricingConfig) error {
	if cfg.BookingFee < 0 {
		return errors.New("pricing.bookingFee cannot be negative")
	}
	if cfg.MemberDiscountPercent < 0 || cfg.MemberDiscountPercent > 100 {
		return errors.New("pricing.memberDiscountPercent must be within 0..100")
	}
	if cfg.JourneyMileageRate < 0 {
		return errors.New("pricing.journeyMileageRate cannot be negative")
	}
	for _, key := range []string{"standard", "evening", "night"} {
		m, ok := cfg.TimeOfDayMultipliers[key]
		if !ok {
			return fmt.Errorf("pricing.timeOfDayMultipliers.%s is required", key)
		}
		if m <= 0 {
			return fmt.Errorf("pricing.timeOfDayMultipliers.%s must be positive", key)
		}
	}
	for _, key := range []string{"once", "weekly", "daily", "monthly"} {
		d, ok := cfg.FrequencyDiscounts[key]
		if !ok {
			return fmt.Errorf("pricing.frequencyDiscounts.%s is required", key)
		}
		if d < 0 || d > 100 {
			return fmt.Errorf("pricing.frequencyDiscounts.%s must be within 0..100", key)
		}
	}
	return nil
}
