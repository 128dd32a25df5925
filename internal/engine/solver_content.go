package engine

// curatedSolutions maps each curated prompt to hand-written opponent solutions
var curatedSolutions = map[string][]string{
	"Design a flying classroom that can travel anywhere in the world": {
		"The SkySchool is a solar-electric airship with a transparent lower deck so students learn geography by watching it pass beneath them. " +
			"Each week the route follows the curriculum: the Nile for ancient history, the Amazon for biology, the Arctic for climate science. " +
			"Local experts board at every stop as guest teachers, and students publish a travel journal that other schools follow live. " +
			"Quiet electric rotors keep the cabin calm enough for lessons, and the ship docks on standard mooring masts so no runway is needed.",
		"My flying classroom is a fleet of small modular pods that dock together in the air. " +
			"Pods split off for field trips, with one group sampling a coral reef while another studies a volcano, then reunite to share findings. " +
			"Each pod has a fold-out lab bench, satellite link and a bunk wall for overnight journeys. " +
			"Routes are voted on by students, which turns planning the trip into a lesson in budgeting, weather and logistics.",
	},
	"Create a device that helps people remember their dreams": {
		"DreamCatch is a soft headband that tracks REM sleep and wakes you gently with a warm light just as a dream ends. " +
			"A bedside speaker then asks three quick questions: where were you, who was there, how did it feel. " +
			"Your spoken answers are transcribed into a private dream journal that links recurring people and places into a map over time. " +
			"Because recall fades within minutes, the timing of the wake-up is the key innovation, not the recording itself.",
		"The Echo Pillow hides a thin pressure sensor and a tiny microphone inside an ordinary pillow. " +
			"When it detects the restless movement that follows a dream, it plays a short tone and starts listening. " +
			"Half-asleep sleepers can mumble fragments, and in the morning an app rebuilds them into a short illustrated story. " +
			"A weekly summary highlights recurring themes so users can notice patterns in their stress or creativity.",
	},
	"Invent a new sport that combines three existing sports": {
		"Climbball blends rock climbing, basketball and relay racing. " +
			"Two teams race up a wide bouldering wall carrying a ball that must be passed between climbers, since nobody may hold it while moving. " +
			"Scoring happens by dunking the ball through hoops placed at three heights, with higher hoops worth more. " +
			"The result rewards strength, teamwork and quick decision making, and it fits in any gym that already has a climbing wall.",
		"Paddle Polo Sprint mixes kayaking, water polo and orienteering. " +
			"Teams navigate a lake course to collect floating balls from marked buoys, then score them in a goal that drifts slowly with the wind. " +
			"A player may carry only one ball at a time, so route planning matters as much as speed. " +
			"Matches last twenty minutes and can be played on any calm body of water.",
	},
	"Design a restaurant concept for the year 2050": {
		"Harvest Loop is a restaurant that grows most of its menu in vertical farms built into the dining room walls. " +
			"Guests pick herbs and greens from the wall beside their table, and the kitchen cooks them within minutes. " +
			"Menus change daily based on what is ripe, and a display shows the water and energy saved compared with imported food. " +
			"Leftovers feed an on-site composting system that fertilises the next harvest, closing the loop.",
		"Memory Kitchen serves dishes recreated from diners' own family recipes. " +
			"Before the visit, guests share a story about a meal from their childhood, and chefs reinterpret it with modern, sustainable ingredients. " +
			"Each course arrives with a short projection of the story on the table surface. " +
			"The restaurant becomes a living archive of food culture, and recipes are shared, with permission, in a public library.",
	},
	"Create a new musical instrument that uses unconventional materials": {
		"The Rainharp is a frame of stretched fishing lines suspended over shallow trays of water. " +
			"Droplets fall from a perforated bar onto the lines, and the player shapes the melody by tilting the bar and changing line tension. " +
			"Contact microphones amplify each strike, so the instrument sounds like a cross between a harp and a rainstorm. " +
			"It is built entirely from recycled fishing gear, which keeps it cheap and easy to repair.",
		"The Bottleorgan uses fifty glass bottles filled to different levels and connected to a foot-powered bellows. " +
			"Pressing keys opens valves that send air across the bottle necks, producing warm, breathy tones. " +
			"Players retune it simply by adding or pouring out water, which makes every performance slightly unique. " +
			"Community workshops can build one in a weekend using bottles collected from local cafes.",
	},
	"Design a sustainable home that could exist in extreme weather conditions": {
		"The Burrow House is half buried in the ground with a domed roof covered in native grasses. " +
			"Earth walls keep the temperature stable through heat waves and blizzards, while the aerodynamic dome sheds high winds. " +
			"A central light well brings sunlight deep inside and doubles as a rainwater collector. " +
			"Solar panels fold flat into the roof during storms, and a small battery bank keeps essentials running for a week off-grid.",
		"The Adaptive Shell is a lightweight frame wrapped in panels that change shape with the weather. " +
			"In heat they open like gills to vent warm air, and in cold they close and expose a dark surface to absorb sunlight. " +
			"The foundation sits on shock-absorbing pillars that protect against floods and earthquakes. " +
			"All panels use recycled aluminium and can be replaced individually, so the home lasts for generations.",
	},
	"Invent a new holiday and its traditions": {
		"Lantern Exchange Day takes place on the longest night of the year. " +
			"Everyone makes a paper lantern and writes a skill they can teach on the inside, then swaps lanterns with a stranger at a town gathering. " +
			"Over the following month people meet to teach each other the skills they received, from baking bread to fixing bikes. " +
			"The holiday turns the darkest night into a celebration of shared knowledge and new friendships.",
		"Quiet Day is a holiday dedicated to rest and listening. " +
			"From sunrise to sunset, screens stay off and towns close streets to cars so people can hear birds and conversation again. " +
			"Families write letters to their future selves and open last year's letter over dinner. " +
			"The day ends with a shared outdoor meal where the only rule is that everyone must ask one new question of someone at the table.",
	},
	"Create a transportation system for a city built underwater": {
		"The city would be connected by a network of pressurised glass tubes carrying small electric capsules. " +
			"Capsules ride on magnetic rails and stop at hubs built into each district's main dome. " +
			"For longer trips, larger submarine shuttles follow marked lanes lit by bioluminescent buoys so residents can watch marine life as they travel. " +
			"Power comes from tidal turbines along the city edge, and every tube has sealed sections so a breach never floods more than one segment.",
		"Currentways use the natural ocean currents around the city. " +
			"Lightweight pods drift along mapped currents with minimal power and use small thrusters only to switch lanes or dock. " +
			"A central traffic system predicts currents each morning and publishes the day's routes like a bus timetable. " +
			"Cargo pods travel at night on the same lanes, keeping daytime routes clear for passengers.",
	},
	"Design a device that translates animal communication into human language": {
		"The PawTalk collar records a pet's sounds, posture and heart rate together rather than relying on sound alone. " +
			"A learning model links those signals to situations the owner labels in an app, such as hunger, play or anxiety. " +
			"Over time the collar speaks short phrases like I want to go outside through a small speaker, and it flags unusual stress patterns to a vet. " +
			"Each animal gets its own profile, because every dog and cat communicates a little differently.",
		"WildEar is a field station for researchers that listens to whole ecosystems at once. " +
			"Microphones and cameras spread through a forest capture calls, then software matches them with behaviour such as alarm, courtship or feeding. " +
			"The station publishes a live translation feed, so rangers see messages like predator near the river in real time. " +
			"The system helps protect endangered species by turning animal warnings into early alerts.",
	},
	"Create a new form of art that engages all five senses": {
		"Sensory Gardens are walk-through artworks built as a sequence of small rooms. " +
			"Each room pairs a colour with a sound, a scent, a texture on the walls and a tiny edible bite that matches the mood. " +
			"Visitors move from a calm blue room smelling of sea salt to a bright orange room with crackling music and citrus sweets. " +
			"Artists compose the sequence like a symphony, so the whole journey tells a story through the body rather than the eyes alone.",
		"Taste Painting invites the audience to eat the artwork. " +
			"Artists paint with edible pigments on sugar canvases while musicians improvise to the colours they see. " +
			"Guests touch the textured surfaces, smell the spices used in each pigment and finally taste a fragment of the finished piece. " +
			"Each performance exists for only one evening, making the shared experience the real work of art.",
	},
}

// genericSolutions apply to any prompt without curated content
var genericSolutions = []string{
	"My approach starts by identifying the people most affected by the challenge and the single biggest obstacle they face. " +
		"I would build a small, low-cost prototype to test the core idea quickly, then gather feedback from real users. " +
		"The design borrows an idea from nature, adapting how ecosystems recycle resources so nothing is wasted. " +
		"Finally, the solution is modular, so communities can adapt it to their own needs instead of relying on a single fixed design.",
	"I would combine two ideas that rarely meet: community participation and playful design. " +
		"The core of the solution is a simple system that anyone can use without training, supported by a shared space where people exchange improvements. " +
		"Each part is made from widely available, recyclable materials to keep costs and environmental impact low. " +
		"Success is measured by how many people keep using it after the novelty wears off, which guides each new iteration.",
	"The solution treats the challenge as a journey with three stages: discovery, creation and sharing. " +
		"First, people explore the problem through hands-on experiments. " +
		"Next, they build their own variation using a flexible toolkit I would provide, and finally they share results in an open gallery so others can learn from them. " +
		"This structure keeps the idea practical while leaving plenty of room for surprising, original outcomes.",
	"I would flip the usual assumption behind the challenge and ask what would happen if the constraint were a feature. " +
		"The resulting design embraces that limitation, using it to create a distinctive experience that stands out from existing options. " +
		"A clear step-by-step rollout keeps the plan realistic, starting with a single pilot and expanding once it proves itself. " +
		"Along the way, the project documents what works so others can reuse the idea freely.",
}
