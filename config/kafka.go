package config

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics  Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
}

type Topics struct {
	LetterShared  string `mapstructure:"letterShared" yaml:"letterShared"`   //  家书分享事件主题
	LetterFlagged string `mapstructure:"letterFlagged" yaml:"letterFlagged"` //  家书举报事件主题
}
