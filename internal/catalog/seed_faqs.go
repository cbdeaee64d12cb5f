package catalog

import "github.com/example/jungleyourself/internal/models"

var seedFAQs = []models.FAQItem{
	// General
	{
		ID:       "faq-1",
		Question: "Is my balcony/terrace suitable for a green roof system?",
		Answer:   "Most balconies and terraces can support a green roof system. Our lightest sedum systems weigh just 60-100 kg/m² when saturated, which is typically well within building load limits. For installations over 10m² or on older buildings, we recommend checking with a structural engineer. Our team can provide load calculation documents to assist.",
		Category: models.FAQGeneral,
	},
	{
		ID:       "faq-2",
		Question: "Will the system damage my terrace tiles or waterproofing?",
		Answer:   "No. Our systems include a root barrier membrane as the first layer, which protects your existing surface. The system is completely removable if needed – ideal for renters. In fact, the coverage often protects your waterproofing from UV damage and thermal stress.",
		Category: models.FAQGeneral,
	},
	{
		ID:       "faq-3",
		Question: "Do I need planning permission?",
		Answer:   "In most cases, no. However, regulations vary by municipality. Check with your local authority if you're unsure, particularly for larger installations or in conservation areas. If you're renting, always get written permission from your landlord.",
		Category: models.FAQGeneral,
	},
	{
		ID:       "faq-4",
		Question: "How long does a terrace garden system last?",
		Answer:   "With proper maintenance, the infrastructure (membrane, drainage, edging) lasts 20+ years. Plants may need replacing or refreshing every 5-10 years depending on type and conditions.",
		Category: models.FAQGeneral,
	},

	// Ordering
	{
		ID:       "faq-5",
		Question: "How long does delivery take?",
		Answer:   "Standard delivery in mainland Spain is 3-7 working days depending on stock. We ship to all EU countries with delivery times of 5-10 working days. Plant packs are shipped separately to ensure freshness and may have specific delivery windows.",
		Category: models.FAQOrdering,
	},
	{
		ID:       "faq-6",
		Question: "Do you deliver to upper floors?",
		Answer:   "We deliver to the street address. For upper floor delivery, check if your building has freight lift access. Our kits are packaged in boxes under 25kg to make carrying up stairs manageable. For large orders, we can arrange special delivery – contact us for a quote.",
		Category: models.FAQOrdering,
	},
	{
		ID:       "faq-7",
		Question: "What payment methods do you accept?",
		Answer:   "We accept all major credit and debit cards (Visa, Mastercard, Maestro), PayPal, and bank transfer for orders over €500. All transactions are processed securely through our encrypted payment system.",
		Category: models.FAQOrdering,
	},
	{
		ID:       "faq-8",
		Question: "Can I order samples before buying?",
		Answer:   "Yes! We offer a sample pack containing swatches of our membrane, drainage mat, geotextile, and substrate for €15 (refundable against orders over €150). Contact our team to request one.",
		Category: models.FAQOrdering,
	},

	// Installation
	{
		ID:       "faq-9",
		Question: "Can I install this myself?",
		Answer:   "Absolutely! Our kits are designed for DIY installation with no specialised tools. Most small kits (2-5m²) can be completed in a single afternoon. We provide detailed step-by-step instructions with photos, and our support team is available to answer questions.",
		Category: models.FAQInstallation,
	},
	{
		ID:       "faq-10",
		Question: "What tools do I need?",
		Answer:   "For most installations you'll need: a tape measure, sharp scissors or utility knife, gardening gloves, and optionally a small level. Nothing specialised or expensive. A broom for cleaning the surface first is also helpful.",
		Category: models.FAQInstallation,
	},
	{
		ID:       "faq-11",
		Question: "What do I do about existing drains?",
		Answer:   "Never cover or block existing drains. Our systems are designed with gaps around drainage points. We include drain guards in our kits to prevent substrate from washing into drains whilst maintaining water flow.",
		Category: models.FAQInstallation,
	},
	{
		ID:       "faq-12",
		Question: "Can I install in winter?",
		Answer:   "You can install the structural layers (membrane, drainage, edging) any time of year. However, we recommend planting between March and October for best establishment. Sedum mats can be installed year-round except during frost.",
		Category: models.FAQInstallation,
	},

	// Maintenance
	{
		ID:       "faq-13",
		Question: "How often do I need to water?",
		Answer:   "It depends on your plant choices and conditions. Sedum systems may only need watering during prolonged drought. Vegetable gardens and ornamental plantings need regular watering in summer – typically every 1-2 days during hot weather. An automatic drip system takes the guesswork out.",
		Category: models.FAQMaintenance,
	},
	{
		ID:       "faq-14",
		Question: "Do I need to fertilise?",
		Answer:   "Yes, but sparingly. Our substrates include initial nutrients. After the first year, apply a slow-release fertiliser in spring. Sedum systems need very little – once a year is plenty. Over-fertilising can cause problems, so less is more.",
		Category: models.FAQMaintenance,
	},
	{
		ID:       "faq-15",
		Question: "What about pests and diseases?",
		Answer:   "Terrace gardens typically have fewer pest problems than ground-level gardens because they're isolated from soil-borne issues. Occasional aphids or caterpillars can be managed with organic methods. Good drainage prevents most fungal problems.",
		Category: models.FAQMaintenance,
	},

	// Returns
	{
		ID:       "faq-16",
		Question: "What is your return policy?",
		Answer:   "Unused products in original packaging can be returned within 30 days for a full refund. Due to their perishable nature, live plants and sedum mats cannot be returned unless damaged in transit. Custom-cut items are non-returnable.",
		Category: models.FAQReturns,
	},
	{
		ID:       "faq-17",
		Question: "What if my order arrives damaged?",
		Answer:   "If any items arrive damaged, take photos and contact us within 48 hours. We'll arrange a replacement or refund. For plant packs, report any issues within 24 hours of delivery.",
		Category: models.FAQReturns,
	},
	{
		ID:       "faq-18",
		Question: "Can I change my order after placing it?",
		Answer:   "If your order hasn't shipped yet, we can make changes. Contact us immediately via email or phone. Once shipped, you'll need to follow our returns process for any unwanted items.",
		Category: models.FAQReturns,
	},
}
