package config

import "inkstudio-backend/utils"

// Events is nil when Kafka is not configured; publishers must tolerate that.
var Events utils.KafkaProducer

// AppointmentEventsTopic carries appointment change events that downstream
// consumers (realtime feed, analytics) react to by refetching.
const AppointmentEventsTopic = "appointment_events"
