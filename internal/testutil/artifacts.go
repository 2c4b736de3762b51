package testutil

// Small fitted artifacts for tests. The model flags login/verify/paypal URLs
// over plain http as bad and https/google/www URLs as good.
const (
	VectorizerJSON = `{
  "type": "CountVectorizer",
  "lowercase": true,
  "token_pattern": "[A-Za-z]+",
  "vocabulary": {"login": 0, "paypal": 1, "verify": 2, "com": 3, "google": 4, "http": 5, "https": 6, "www": 7}
}`

	ModelJSON = `{
  "type": "LogisticRegression",
  "classes": ["bad", "good"],
  "coef": [[-2.0, -1.5, -2.0, 0.1, 2.0, -0.5, 0.5, 0.2]],
  "intercept": [0.3]
}`
)
