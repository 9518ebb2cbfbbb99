package maps

import "github.com/mitchellh/mapstructure"

// Map2Struct takes an input map and uses reflection to translate it to the
// output structure. output must be a pointer to a map or struct. String
// values decode into time.Duration fields ("5s", "200ms").
func Map2Struct(input interface{}, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
		Result:     output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
