package domain

import (
	"encoding/json"
	"strconv"
)

// decodeLenientContent reads CV content written by other clients of the store.
// Only a document that is not a JSON object fails.
func decodeLenientContent(data []byte) (CVContent, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return CVContent{}, err
	}

	content := CVContent{Title: looseString(doc["title"])}

	if personal, ok := doc["personal"].(map[string]any); ok {
		content.Personal = PersonalInfo{
			FullName: looseString(personal["fullName"]),
			Email:    looseString(personal["email"]),
			Phone:    looseString(personal["phone"]),
			Location: looseString(personal["location"]),
			Headline: looseString(personal["headline"]),
			Summary:  looseString(personal["summary"]),
		}
	}

	for _, item := range looseObjects(doc["experience"]) {
		content.Experience = append(content.Experience, Experience{
			ID:               looseString(item["id"]),
			Company:          looseString(item["company"]),
			Position:         looseString(item["position"]),
			StartDate:        looseString(item["startDate"]),
			EndDate:          looseString(item["endDate"]),
			CurrentlyWorking: item["currentlyWorking"] == true,
			Description:      looseString(item["description"]),
		})
	}

	for _, item := range looseObjects(doc["education"]) {
		content.Education = append(content.Education, Education{
			ID:             looseString(item["id"]),
			School:         looseString(item["school"]),
			Degree:         looseString(item["degree"]),
			Field:          looseString(item["field"]),
			GraduationDate: looseString(item["graduationDate"]),
			Description:    looseString(item["description"]),
		})
	}

	if skills, ok := doc["skills"].([]any); ok {
		for _, s := range skills {
			if skill := looseString(s); skill != "" {
				content.Skills = append(content.Skills, skill)
			}
		}
	}

	return content, nil
}

// looseString renders JSON scalars as text; objects, arrays and null become "".
func looseString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func looseObjects(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}
