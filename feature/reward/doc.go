// Package reward exposes RewardData, the reward bundles referenced by missions,
// challenges and events.
package reward
