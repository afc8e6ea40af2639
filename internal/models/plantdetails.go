package models

// PlantDetails содержит расширенные сведения о виде растения,
// запрашиваемые у внешнего каталога по требованию. Не сохраняется
// на сервере дольше одного ответа.
type PlantDetails struct {
	FamilyName          string   `json:"family_name,omitempty"`
	ScientificName      string   `json:"scientific_name,omitempty"`
	Description         string   `json:"description,omitempty"`
	RecommendedWatering string   `json:"recommended_watering,omitempty"`
	Sunlight            []string `json:"sunlight,omitempty"`
}

// UnknownPlantDetails возвращает заглушку для случаев, когда каталог
// недоступен или вид закрыт платным тарифом. Клиенту всегда есть что показать.
func UnknownPlantDetails() PlantDetails {
	return PlantDetails{
		FamilyName:          "Unknown",
		ScientificName:      "Unknown",
		Description:         "Unknown",
		RecommendedWatering: "Unknown",
	}
}
