package config

import (
	"casamento/pkg/config"
)

func init() {
	config.Add("pix", func() map[string]interface{} {
		return map[string]interface{}{

			// Receiver shown in the BR Code payload
			"merchant_name": config.Env("PIX_MERCHANT_NAME", "Casal"),
			"merchant_city": config.Env("PIX_MERCHANT_CITY", "SAO PAULO"),
		}
	})
}
