package llm

import "fmt"

// BuildPairingPrompt asks for exactly five seasonally framed drink pairings
// for the given dish. The budget clause is only attached when the caller
// supplied a budget.
func BuildPairingPrompt(dish string, season string, budget string) string {
	prompt := fmt.Sprintf(`You are a fun, friendly, and expert sommelier with a vast knowledge of food and drink pairings. It is currently %s. For the following dish: "%s", provide a list of 5 ideal and creative drink pairings that are seasonally appropriate.

For %s, focus on pairings that complement the weather and typical ingredients of the season. For example, in summer, suggest refreshing options, and in winter, suggest warmer, richer drinks.

Please include a diverse and fun range of options, such as:
- At least one wine (red, white, or sparkling).
- At least one beer.
- At least one cocktail or spirit (like Tequila, Gin, or Whiskey).
- At least one non-alcoholic option.

For each pairing, provide the drink's specific name, its general type, a brief description of the drink, a detailed reasoning for why it's a great match for the dish, and an estimated price. Focus on flavor interactions, contrasts, and complements in a fun and accessible way.`, season, dish, season)

	if budget != "" {
		prompt += fmt.Sprintf(`

The user has a budget of %q. Tailor every estimated price to fit that budget and mention the price in local currency.`, budget)
	} else {
		prompt += `

For the estimated price, give a generic price band (e.g., "$10-15 per bottle", "$8 per cocktail").`
	}

	return prompt
}

// BuildNearbyPrompt asks for local venues selling or serving the named drink.
// The coordinates travel separately via the location-retrieval tool config.
func BuildNearbyPrompt(drinkName string) string {
	return fmt.Sprintf(
		`Find local places like bars, liquor stores, or restaurants near me that would sell or serve %q.`,
		drinkName,
	)
}
