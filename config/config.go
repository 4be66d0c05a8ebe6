package config

func InitializeConfig() error {
	NewLoggerService()
	if err := NewCacheService(); err != nil {
		return err
	}
	if err := NewInfluxDB(); err != nil {
		return err
	}
	if err := LoadMarkets(); err != nil {
		return err
	}

	return nil
}
