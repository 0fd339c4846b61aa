package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Default messages for absent optional response fields
const (
	DefaultRecommendation = "No recommendations provided."
)

// ScriptResult is the decoded script generation response. The service is
// inconsistent about the field carrying the screenplay, so Text resolves the
// variants once here rather than at every call site.
type ScriptResult struct {
	StructuredScript string `json:"structured_script"`
	FinalScript      string `json:"final_script"`

	// Raw keeps the undecoded body for the dump fallback
	Raw json.RawMessage `json:"-"`
}

// DecodeScriptResult parses a script generation response body
func DecodeScriptResult(body []byte) (*ScriptResult, error) {
	result := &ScriptResult{}
	if err := json.Unmarshal(body, result); err != nil {
		return nil, fmt.Errorf("failed to decode script response: %w", err)
	}
	result.Raw = json.RawMessage(body)
	return result, nil
}

// Text returns the screenplay text, preferring structured_script, then
// final_script, then a dump of the raw payload so the user always sees
// something for a 2xx response.
func (sr *ScriptResult) Text() string {
	if sr.StructuredScript != "" {
		return sr.StructuredScript
	}
	if sr.FinalScript != "" {
		return sr.FinalScript
	}
	return string(sr.Raw)
}

// EmotionResult is the decoded emotion analysis response
type EmotionResult struct {
	PredictedEmotion string          `json:"predicted_emotion"`
	Confidence       json.Number     `json:"confidence"`
	Match            bool            `json:"match"`
	Recommendations  json.RawMessage `json:"recommendations"`
}

// DecodeEmotionResult parses an emotion analysis response body. The service
// returns confidence as a JSON number or a stringified number depending on
// version, so decoding goes through an intermediate shape.
func DecodeEmotionResult(body []byte) (*EmotionResult, error) {
	var intermediate struct {
		PredictedEmotion string          `json:"predicted_emotion"`
		Confidence       json.RawMessage `json:"confidence"`
		Match            bool            `json:"match"`
		Recommendations  json.RawMessage `json:"recommendations"`
	}
	if err := json.Unmarshal(body, &intermediate); err != nil {
		return nil, fmt.Errorf("failed to decode emotion response: %w", err)
	}

	result := &EmotionResult{
		PredictedEmotion: intermediate.PredictedEmotion,
		Match:            intermediate.Match,
		Recommendations:  intermediate.Recommendations,
	}

	if len(intermediate.Confidence) > 0 {
		// Strip quotes when the value arrived stringified
		text := strings.Trim(string(intermediate.Confidence), `"`)
		if _, err := strconv.ParseFloat(text, 64); err == nil {
			result.Confidence = json.Number(text)
		}
	}

	return result, nil
}

// ConfidenceValue returns confidence normalized to the 0..1 range. Values
// above 1 are treated as already-percent and scaled back down, clamped to 1.
func (er *EmotionResult) ConfidenceValue() float64 {
	value, err := er.Confidence.Float64()
	if err != nil {
		return 0
	}
	if value > 1 {
		value = value / 100
	}
	if value > 1 {
		value = 1
	}
	if value < 0 {
		value = 0
	}
	return value
}

// ConfidencePercent returns confidence formatted for display, e.g. "87%"
func (er *EmotionResult) ConfidencePercent() string {
	return fmt.Sprintf("%d%%", int(er.ConfidenceValue()*100+0.5))
}

// RecommendationText resolves the recommendations field, which is either a
// plain string or an object carrying full_recommendation. Missing or
// unrecognized shapes fall back to a default message.
func (er *EmotionResult) RecommendationText() string {
	if len(er.Recommendations) == 0 {
		return DefaultRecommendation
	}

	var asString string
	if err := json.Unmarshal(er.Recommendations, &asString); err == nil {
		if asString == "" {
			return DefaultRecommendation
		}
		return asString
	}

	var asObject struct {
		FullRecommendation string `json:"full_recommendation"`
	}
	if err := json.Unmarshal(er.Recommendations, &asObject); err == nil && asObject.FullRecommendation != "" {
		return asObject.FullRecommendation
	}

	return DefaultRecommendation
}
