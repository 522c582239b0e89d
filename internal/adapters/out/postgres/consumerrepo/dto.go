// Package consumerrepo reads consumer data needed to accept orders.
package consumerrepo

// ConsumerAddressDTO is a delivery address of a consumer. Addresses are managed
// by the account service; here only their existence matters.
type ConsumerAddressDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	ConsumerID int64  `gorm:"not null;index"`
	Street     string `gorm:"size:200"`
	Number     string `gorm:"size:20"`
	District   string `gorm:"size:100"`
	City       string `gorm:"size:100"`
	ZipCode    string `gorm:"size:20"`
}

func (ConsumerAddressDTO) TableName() string {
	return "consumer_addresses"
}
