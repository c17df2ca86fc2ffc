package service

type Config struct {
	DatabaseUri             string  `envconfig:"DATABASE_URI" required:"true"`
	DatabaseMaxConns        int     `envconfig:"DATABASE_MAX_CONNS" default:"10"`
	DatabaseMaxIdleConns    int     `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"5"`
	DatabaseConnMaxLifetime int     `envconfig:"DATABASE_CONN_MAX_LIFETIME" default:"1800"` // 30 minutes
	SentryDSN               string  `envconfig:"SENTRY_DSN"`
	SentryTracesSampleRate  float64 `envconfig:"SENTRY_TRACES_SAMPLE_RATE"`
	LogFilePath             string  `envconfig:"LOG_FILE_PATH"`
	SecretKey               []byte  `envconfig:"SECRET_KEY" required:"true"`
	AdminToken              string  `envconfig:"ADMIN_TOKEN"`
	Network                 string  `envconfig:"NETWORK" default:"regnet"` // mainnet, testnet, regnet
	Host                    string  `envconfig:"HOST" default:"localhost:8081"`
	Port                    int     `envconfig:"PORT" default:"8081"`
	PaymentURL              string  `envconfig:"PAYMENT_URL" default:"http://127.0.0.1:8081/payment/"`
	AckMemo                 string  `envconfig:"ACK_MEMO" default:"Thanks for your custom!"`
	DefaultRateLimit        int     `envconfig:"DEFAULT_RATE_LIMIT" default:"10"`
	StrictRateLimit         int     `envconfig:"STRICT_RATE_LIMIT" default:"10"`
	BurstRateLimit          int     `envconfig:"BURST_RATE_LIMIT" default:"1"`
	EnablePrometheus        bool    `envconfig:"ENABLE_PROMETHEUS" default:"false"`
	PrometheusPort          int     `envconfig:"PROMETHEUS_PORT" default:"9092"`
	WebhookUrl              string  `envconfig:"WEBHOOK_URL"`
	BroadcastTimeout        int     `envconfig:"BROADCAST_TIMEOUT" default:"30"`     // in seconds
	ExpirySweepInterval     int     `envconfig:"EXPIRY_SWEEP_INTERVAL" default:"60"` // in seconds, 0 disables the reaper
	CallbackTimeout         int     `envconfig:"CALLBACK_TIMEOUT" default:"10"`      // in seconds, per delivery attempt
	CallbackMaxRetries      int     `envconfig:"CALLBACK_MAX_RETRIES" default:"5"`
	RabbitMQUri             string  `envconfig:"RABBITMQ_URI"`
	RabbitMQPaymentExchange string  `envconfig:"RABBITMQ_PAYMENT_EXCHANGE" default:"paygate_payment"`
}
