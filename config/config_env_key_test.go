package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"apiKey":    "",
			"projectId": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"pricing": map[string]any{
			"taxRate": 0.1,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_APIKEY", want: "firebase.apiKey"},
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "PRICING_TAXRATE", want: "pricing.taxRate"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsBusinessParameters(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Pricing.TaxRate != defaultTaxRate {
		t.Fatalf("TaxRate = %v, want %v", cfg.Pricing.TaxRate, defaultTaxRate)
	}
	if cfg.Pricing.DeliveryFee != defaultDeliveryFee {
		t.Fatalf("DeliveryFee = %v, want %v", cfg.Pricing.DeliveryFee, defaultDeliveryFee)
	}
	if cfg.Checkout.ProcessingDelay != defaultProcessingDelay {
		t.Fatalf("ProcessingDelay = %v, want %v", cfg.Checkout.ProcessingDelay, defaultProcessingDelay)
	}
	if cfg.Feeds.Retention != defaultFeedRetention {
		t.Fatalf("Retention = %v, want %v", cfg.Feeds.Retention, defaultFeedRetention)
	}
}
