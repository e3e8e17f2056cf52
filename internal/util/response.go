package util

type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}

func Success(message string) Envelope {
	if message == "" {
		return Envelope{"success": true}
	}
	return Envelope{"success": true, "message": message}
}
